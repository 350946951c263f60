package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	// es-CL wall clock layout used for the ledger timestamp column.
	LedgerTimestampLayout = "02-01-2006 15:04:05"
)
