package responses

// WebhookAck and WebhookFailure are the only two bodies the webhook endpoint
// ever returns; the provider drives its retries off the status code alone.
type WebhookAck struct {
	Status string `json:"status"`
}

type WebhookFailure struct {
	Error string `json:"error"`
}
