package config

type (
	DriverConfig struct {
		Logger Logger
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App    App
	Strapi Strapi
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	EndpointPrefix           string
	Timezone                 string
	MaxRequests              int `validate:"gte=1"`
	ShutdownTimeoutInSeconds int `validate:"gte=0"`
}

// Strapi addresses the content-management backend. The bearer key is sent
// verbatim on every request.
type Strapi struct {
	BaseUrl              string `validate:"required,url"`
	ApiKey               string
	MaxRequestsPerSecond int `validate:"gte=0"`
	MaxIdleConnsPerHost  int `validate:"gte=0"`
}
