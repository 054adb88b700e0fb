package config

import (
	"appointment-booking-service/internal/pkg/exceptions"
	"appointment-booking-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
		},
		Strapi: Strapi{
			BaseUrl:              utils.GetEnvString("STRAPI_BASE_URL", "https://appointment-booking-strapi.onrender.com/api"),
			ApiKey:               utils.GetEnvString("STRAPI_API_KEY", ""),
			MaxRequestsPerSecond: utils.GetEnvInt("STRAPI_MAX_REQUESTS_PER_SECOND", 0),
			MaxIdleConnsPerHost:  utils.GetEnvInt("STRAPI_MAX_IDLE_CONNS_PER_HOST", 10),
		},
	}
}

func (c *InternalConfig) Validate() error {
	if err := utils.ValidateStruct(c.App); err != nil {
		return exceptions.ErrInvalidConfiguration(err)
	}
	if err := utils.ValidateStruct(c.Strapi); err != nil {
		return exceptions.ErrInvalidConfiguration(err)
	}
	return nil
}
