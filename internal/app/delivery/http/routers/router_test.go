package routers

import (
	"appointment-booking-service/internal/app/config"
	"appointment-booking-service/internal/app/delivery/http/controllers"
	"appointment-booking-service/internal/app/delivery/http/middlewares"
	"appointment-booking-service/internal/pkg/exceptions"
	"appointment-booking-service/internal/pkg/strapi_dto"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) FindByUserEmail(ctx context.Context, email string) ([]strapi_dto.Entry, error) {
	args := m.Called(ctx, email)
	entries, _ := args.Get(0).([]strapi_dto.Entry)
	return entries, args.Error(1)
}

func (m *MockAppointmentUsecase) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]strapi_dto.Entry, error) {
	args := m.Called(ctx, doctorID, date)
	entries, _ := args.Get(0).([]strapi_dto.Entry)
	return entries, args.Error(1)
}

func (m *MockAppointmentUsecase) FindByDoctorName(ctx context.Context, doctorName string) ([]strapi_dto.Entry, error) {
	args := m.Called(ctx, doctorName)
	entries, _ := args.Get(0).([]strapi_dto.Entry)
	return entries, args.Error(1)
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, payload interface{}) (*strapi_dto.Entry, error) {
	args := m.Called(ctx, payload)
	entry, _ := args.Get(0).(*strapi_dto.Entry)
	return entry, args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateSymptoms(ctx context.Context, appointmentID string, symptoms interface{}) (*strapi_dto.Entry, error) {
	args := m.Called(ctx, appointmentID, symptoms)
	entry, _ := args.Get(0).(*strapi_dto.Entry)
	return entry, args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string) (*strapi_dto.DeleteAcknowledgement, error) {
	args := m.Called(ctx, appointmentID)
	ack, _ := args.Get(0).(*strapi_dto.DeleteAcknowledgement)
	return ack, args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointmentByEmailDate(ctx context.Context, email, date string) ([]strapi_dto.DeleteAcknowledgement, error) {
	args := m.Called(ctx, email, date)
	acks, _ := args.Get(0).([]strapi_dto.DeleteAcknowledgement)
	return acks, args.Error(1)
}

type fakeDoctorClient struct {
	category string
	findErr  error
}

func (f *fakeDoctorClient) FindAll(ctx context.Context) ([]strapi_dto.Entry, error) {
	return []strapi_dto.Entry{{ID: 1}, {ID: 2}}, nil
}

func (f *fakeDoctorClient) FindByCategory(ctx context.Context, categoryName string) ([]strapi_dto.Entry, error) {
	f.category = categoryName
	return []strapi_dto.Entry{{ID: 1}}, nil
}

func (f *fakeDoctorClient) FindByID(ctx context.Context, doctorID string) (*strapi_dto.Entry, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return &strapi_dto.Entry{ID: 3}, nil
}

type fakeListClient struct {
	entries []strapi_dto.Entry
}

func (f *fakeListClient) FindAll(ctx context.Context) ([]strapi_dto.Entry, error) {
	return f.entries, nil
}

type fakePatientSymptomClient struct {
	savedEmail string
}

func (f *fakePatientSymptomClient) Create(ctx context.Context, email string, symptoms interface{}) (*strapi_dto.Entry, error) {
	f.savedEmail = email
	return &strapi_dto.Entry{ID: 5}, nil
}

func (f *fakePatientSymptomClient) FindByEmail(ctx context.Context, email string) ([]strapi_dto.Entry, error) {
	return []strapi_dto.Entry{{ID: 5}}, nil
}

type testServer struct {
	router      *chi.Mux
	appointment *MockAppointmentUsecase
	doctor      *fakeDoctorClient
	symptoms    *fakePatientSymptomClient
}

func newTestServer() *testServer {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:        "v1",
			EndpointPrefix: "api",
			MaxRequests:    1000,
		},
	}

	s := &testServer{
		router:      chi.NewRouter(),
		appointment: new(MockAppointmentUsecase),
		doctor:      &fakeDoctorClient{},
		symptoms:    &fakePatientSymptomClient{},
	}
	categories := &fakeListClient{entries: []strapi_dto.Entry{{ID: 1}}}
	campaigns := &fakeListClient{}
	galleries := &fakeListClient{}

	SetupRoutes(
		s.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewAppointmentController(logger, s.appointment),
		controllers.NewDoctorController(logger, s.doctor),
		controllers.NewCatalogController(logger, categories, campaigns, galleries),
		controllers.NewPatientSymptomController(logger, s.symptoms),
	)
	return s
}

func (s *testServer) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestAppointmentRouter_CancelByEmailDate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := newTestServer()
		s.appointment.On("CancelAppointmentByEmailDate", mock.Anything, "a@b.com", "09/04/2025").Return([]strapi_dto.DeleteAcknowledgement{
			{ID: "11", StatusCode: http.StatusOK},
			{ID: "12", StatusCode: http.StatusOK},
		}, nil)

		rr := s.do(http.MethodPost, "/api/v1/appointments/cancel", map[string]string{"email": "a@b.com", "date": "09/04/2025"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		body := decodeBody(t, rr)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "2025-04-09", data["formatted_date"])
		assert.Len(t, data["cancelled"], 2)
	})

	t.Run("No Match", func(t *testing.T) {
		s := newTestServer()
		s.appointment.On("CancelAppointmentByEmailDate", mock.Anything, "a@b.com", "09/04/2025").
			Return(nil, exceptions.ErrNoMatchingAppointment("a@b.com", "2025-04-09"))

		rr := s.do(http.MethodPost, "/api/v1/appointments/cancel", map[string]string{"email": "a@b.com", "date": "09/04/2025"})

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "no_match", decodeBody(t, rr)["kind"])
	})

	t.Run("Partial Failure", func(t *testing.T) {
		s := newTestServer()
		cause := exceptions.ErrBackendRejected(http.StatusInternalServerError, "delete_by_id", "appointments", "")
		s.appointment.On("CancelAppointmentByEmailDate", mock.Anything, "a@b.com", "09/04/2025").
			Return(nil, exceptions.ErrPartialCancellation(cause, 1, 3))

		rr := s.do(http.MethodPost, "/api/v1/appointments/cancel", map[string]string{"email": "a@b.com", "date": "09/04/2025"})

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, "partial_failure", decodeBody(t, rr)["kind"])
	})

	t.Run("Missing Date", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(http.MethodPost, "/api/v1/appointments/cancel", map[string]string{"email": "a@b.com"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "date is required", decodeBody(t, rr)["message"])
		s.appointment.AssertNotCalled(t, "CancelAppointmentByEmailDate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAppointmentRouter_Find(t *testing.T) {
	t.Run("By Email", func(t *testing.T) {
		s := newTestServer()
		s.appointment.On("FindByUserEmail", mock.Anything, "a@b.com").Return([]strapi_dto.Entry{{ID: 11}}, nil)

		rr := s.do(http.MethodGet, "/api/v1/appointments?email=a%40b.com", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		s.appointment.AssertExpectations(t)
	})

	t.Run("By Doctor And Date", func(t *testing.T) {
		s := newTestServer()
		s.appointment.On("FindByDoctorAndDate", mock.Anything, "7", "2025-04-09").Return([]strapi_dto.Entry{}, nil)

		rr := s.do(http.MethodGet, "/api/v1/appointments?doctor_id=7&date=2025-04-09", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		s.appointment.AssertExpectations(t)
	})

	t.Run("Without Filters", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(http.MethodGet, "/api/v1/appointments", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAppointmentRouter_CancelAppointment(t *testing.T) {
	s := newTestServer()
	s.appointment.On("CancelAppointment", mock.Anything, "11").Return(&strapi_dto.DeleteAcknowledgement{ID: "11", StatusCode: http.StatusOK}, nil)

	rr := s.do(http.MethodDelete, "/api/v1/appointments/11", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	s.appointment.AssertExpectations(t)
}

func TestAppointmentRouter_UpdateSymptoms(t *testing.T) {
	s := newTestServer()
	s.appointment.On("UpdateSymptoms", mock.Anything, "4", "fever").Return(&strapi_dto.Entry{ID: 4}, nil)

	rr := s.do(http.MethodPut, "/api/v1/appointments/4/symptoms", map[string]string{"symptoms": "fever"})

	assert.Equal(t, http.StatusOK, rr.Code)
	s.appointment.AssertExpectations(t)
}

func TestDoctorRouter(t *testing.T) {
	t.Run("By Category", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(http.MethodGet, "/api/v1/doctors?category=Cardio", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Cardio", s.doctor.category)
	})

	t.Run("Backend Not Found Keeps Status", func(t *testing.T) {
		s := newTestServer()
		s.doctor.findErr = exceptions.ErrBackendRejected(http.StatusNotFound, "find_by_id", "doctors", "Not Found")

		rr := s.do(http.MethodGet, "/api/v1/doctors/3", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "backend", decodeBody(t, rr)["kind"])
	})

	t.Run("Transport Failure", func(t *testing.T) {
		s := newTestServer()
		s.doctor.findErr = exceptions.ErrSendHTTPRequest(errors.New("connection refused"))

		rr := s.do(http.MethodGet, "/api/v1/doctors/3", nil)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestCatalogRouter(t *testing.T) {
	s := newTestServer()

	for _, target := range []string{"/api/v1/categories", "/api/v1/campaigns", "/api/v1/galleries"} {
		rr := s.do(http.MethodGet, target, nil)
		assert.Equal(t, http.StatusOK, rr.Code, target)
	}
}

func TestPatientSymptomRouter(t *testing.T) {
	s := newTestServer()

	rr := s.do(http.MethodPost, "/api/v1/patient-symptoms", map[string]interface{}{"email": "a@b.com", "symptoms": []string{"cough"}})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "a@b.com", s.symptoms.savedEmail)

	rr = s.do(http.MethodGet, "/api/v1/patient-symptoms", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodGet, "/api/v1/patient-symptoms?email=a%40b.com", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func withoutDeadline() interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		_, hasDeadline := ctx.Deadline()
		return !hasDeadline
	})
}

func TestAppointmentRouter_CancelRoutesKeepRequestContext(t *testing.T) {
	t.Run("Cancel By Email Date", func(t *testing.T) {
		s := newTestServer()
		s.appointment.On("CancelAppointmentByEmailDate", withoutDeadline(), "a@b.com", "09/04/2025").
			Return([]strapi_dto.DeleteAcknowledgement{{ID: "11", StatusCode: http.StatusOK}}, nil)

		rr := s.do(http.MethodPost, "/api/v1/appointments/cancel", map[string]string{"email": "a@b.com", "date": "09/04/2025"})

		assert.Equal(t, http.StatusOK, rr.Code)
		s.appointment.AssertExpectations(t)
	})

	t.Run("Cancel By ID", func(t *testing.T) {
		s := newTestServer()
		s.appointment.On("CancelAppointment", withoutDeadline(), "11").
			Return(&strapi_dto.DeleteAcknowledgement{ID: "11", StatusCode: http.StatusOK}, nil)

		rr := s.do(http.MethodDelete, "/api/v1/appointments/11", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		s.appointment.AssertExpectations(t)
	})
}
