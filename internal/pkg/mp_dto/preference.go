package mp_dto

// CreatePreference is the body of POST /checkout/preferences. The creation
// endpoints are thin collaborators; the shape mirrors what Mercado Pago's
// checkout expects for a single-item donation.
type CreatePreference struct {
	Items             []PreferenceItem `json:"items"`
	BackURLs          *BackURLs        `json:"back_urls,omitempty"`
	NotificationURL   string           `json:"notification_url,omitempty"`
	ExternalReference string           `json:"external_reference,omitempty"`
	Metadata          DonorMetadata    `json:"metadata"`
	Payer             *Payer           `json:"payer,omitempty"`
}

type PreferenceItem struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	CurrencyID string  `json:"currency_id"`
}

type BackURLs struct {
	Success string `json:"success,omitempty"`
	Failure string `json:"failure,omitempty"`
	Pending string `json:"pending,omitempty"`
}

type Payer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// PreferenceResult is the slice of the creation response we care about: the
// redirect URL the donor is sent to.
type PreferenceResult struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// CreatePreapproval is the body of POST /preapproval.
type CreatePreapproval struct {
	Reason            string        `json:"reason"`
	AutoRecurring     AutoRecurring `json:"auto_recurring"`
	PayerEmail        string        `json:"payer_email"`
	BackURL           string        `json:"back_url,omitempty"`
	Status            string        `json:"status,omitempty"`
	ExternalReference string        `json:"external_reference,omitempty"`
	NotificationURL   string        `json:"notification_url,omitempty"`
	Metadata          DonorMetadata `json:"metadata"`
}

type PreapprovalResult struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}
