package config

type (
	InternalConfig struct {
		App          App
		MercadoPago  MercadoPago
		GoogleSheets GoogleSheets
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		BaseURL                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
	}

	// MercadoPago holds the provider credentials. Checkout and subscription
	// tokens belong to distinct product areas and must not be interchanged.
	MercadoPago struct {
		BaseURL                 string
		CheckoutAccessToken     string
		SubscriptionAccessToken string
		RequestsPerSecond       float64
	}

	GoogleSheets struct {
		ServiceAccountEmail string
		PrivateKey          string
		SpreadsheetID       string
		WriteRange          string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
