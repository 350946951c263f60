package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingEventTypeKey    = "event_type"
	LoggingResourceIDKey   = "resource_id"
	LoggingCategoryKey     = "category"
	LoggingAmountKey       = "amount"
	LoggingUpstreamKey     = "upstream_status"
	LoggingSpreadsheetKey  = "spreadsheet_id"
	LoggingInstallmentKey  = "installment"
	LoggingNotificationKey = "notification"
)
