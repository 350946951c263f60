package mp_dto

// Preapproval is the subscription resource read back from
// GET /v1/preapproval/{id}.
type Preapproval struct {
	ID                string        `json:"id"`
	Status            string        `json:"status"`
	Reason            string        `json:"reason"`
	PayerEmail        string        `json:"payer_email"`
	ExternalReference string        `json:"external_reference"`
	AutoRecurring     AutoRecurring `json:"auto_recurring"`
	Metadata          DonorMetadata `json:"metadata"`
}

type AutoRecurring struct {
	Frequency         int     `json:"frequency"`
	FrequencyType     string  `json:"frequency_type"`
	TransactionAmount float64 `json:"transaction_amount"`
	CurrencyID        string  `json:"currency_id"`
}
