package requests

// CheckoutRequest is the donor form payload for a one-time donation.
type CheckoutRequest struct {
	Contact    string  `json:"contacto"`
	Email      string  `json:"email" validate:"required,email"`
	RUT        string  `json:"rut" validate:"rut"`
	Option     string  `json:"opcion" validate:"required"`
	Amount     float64 `json:"monto" validate:"required,gt=0"`
	Dedication string  `json:"dedicatoria"`
}

// SubscribeRequest is the donor form payload for a monthly subscription.
type SubscribeRequest struct {
	Contact    string  `json:"contacto"`
	Email      string  `json:"email" validate:"required,email"`
	RUT        string  `json:"rut" validate:"rut"`
	Option     string  `json:"opcion" validate:"required"`
	Amount     float64 `json:"monto" validate:"required,gt=0"`
	Dedication string  `json:"dedicatoria"`
}
