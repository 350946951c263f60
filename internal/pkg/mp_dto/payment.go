package mp_dto

// Payment is the authoritative payment resource read back from
// GET /v1/payments/{id} and from the authorized-payments detail endpoint.
// Only the fields reconciliation needs are mapped.
type Payment struct {
	ID                int64          `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail"`
	Description       string         `json:"description"`
	TransactionAmount float64        `json:"transaction_amount"`
	CurrencyID        string         `json:"currency_id"`
	ExternalReference string         `json:"external_reference"`
	Metadata          DonorMetadata  `json:"metadata"`
	InvoicePeriod     *InvoicePeriod `json:"invoice_period,omitempty"`
}

// InvoicePeriod carries the recurring-charge sequence number within a
// subscription. Absent on one-time payments.
type InvoicePeriod struct {
	Period int    `json:"period"`
	Type   string `json:"type"`
}

// AuthorizedPaymentSearch is the envelope of
// GET /v1/preapproval/{id}/authorized_payments/search.
type AuthorizedPaymentSearch struct {
	Results []AuthorizedPaymentSummary `json:"results"`
}

type AuthorizedPaymentSummary struct {
	ID string `json:"id"`
}
