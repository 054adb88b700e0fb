package constvars

const (
	CollectionCategories      = "categories"
	CollectionDoctors         = "doctors"
	CollectionAppointments    = "appointments"
	CollectionPatientSymptoms = "patient-symptoms"
	CollectionCampaigns       = "campaigns"
	CollectionGalleries       = "galleries"
)

// Attribute names as defined by the backend content types.
const (
	AttributeEmail        = "Email"
	AttributeDate         = "Date"
	AttributeName         = "Name"
	AttributeImage        = "Image"
	AttributeSymptoms     = "symp"
	AttributeDoctor       = "doctor"
	AttributeCategories   = "categories"
	AttributeSymptomEmail = "email"
	AttributeCreatedAt    = "createdAt"
)

const (
	StrapiPopulateAll = "*"
	StrapiSortDesc    = "desc"
	StrapiSortAsc     = "asc"
)

const (
	OperationQuery      = "query"
	OperationFindByID   = "find_by_id"
	OperationCreate     = "create"
	OperationUpdate     = "update"
	OperationDeleteByID = "delete_by_id"

	OperationCancelByEmailDate = "cancel_appointment_by_email_date"
)
