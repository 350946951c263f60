package config

import (
	"donaciones-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			BaseURL:                   utils.GetEnvString("APP_BASE_URL", ""),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "America/Santiago"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
		},
		MercadoPago: MercadoPago{
			BaseURL:                 utils.GetEnvString("MERCADO_PAGO_BASE_URL", "https://api.mercadopago.com"),
			CheckoutAccessToken:     utils.GetEnvString("MERCADO_PAGO_ACCESS_TOKEN_CHECKOUT", ""),
			SubscriptionAccessToken: utils.GetEnvString("MERCADO_PAGO_ACCESS_TOKEN_SUBSCRIPTION", ""),
			RequestsPerSecond:       utils.GetEnvFloat("MERCADO_PAGO_REQUESTS_PER_SECOND", 10),
		},
		GoogleSheets: GoogleSheets{
			ServiceAccountEmail: utils.GetEnvString("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
			PrivateKey:          utils.GetEnvString("GOOGLE_PRIVATE_KEY", ""),
			SpreadsheetID:       utils.GetEnvString("GOOGLE_SHEET_ID", ""),
			WriteRange:          utils.GetEnvString("GOOGLE_SHEET_RANGE", "Donaciones!A1"),
		},
	}
}
