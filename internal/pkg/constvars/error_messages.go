package constvars

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "we cannot process your request right now"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application"
	ErrClientInvalidDonation               = "option and a positive amount are required"
	ErrClientProviderUnavailable           = "payment provider is unavailable"
)

// Developer-facing messages
const (
	ErrDevCannotParseJSON           = "failed to parse JSON payload"
	ErrDevCannotMarshalJSON         = "failed to marshal JSON payload"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevInvalidInput              = "invalid input"
	ErrDevBuildRequest              = "failed to build outbound HTTP request"
	ErrDevSendRequest               = "failed to send outbound HTTP request"
	ErrDevDecodeResponse            = "failed to decode upstream response"
	ErrDevReadBody                  = "failed to read request body"
	ErrDevMalformedNotification     = "notification is missing its resource id"
	ErrDevUpstreamUnavailable       = "provider read failed: %s"
	ErrDevNoChargeFound             = "no authorized charge found for subscription %s"
	ErrDevLedgerAppend              = "ledger append failed"
	ErrDevCreatePreference          = "failed to create checkout preference"
	ErrDevCreatePreapproval         = "failed to create subscription preapproval"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"url":      "must be a valid URL",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}
