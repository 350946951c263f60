package mp_dto

// DonorMetadata is the free-form metadata the donation form attaches when a
// preference or preapproval is created, echoed back on the fetched resource.
// Keys are the Spanish form-field names; Mercado Pago lowercases them.
type DonorMetadata struct {
	Contact    string  `json:"contacto"`
	Email      string  `json:"email"`
	RUT        string  `json:"rut"`
	Option     string  `json:"opcion"`
	Amount     float64 `json:"monto"`
	Dedication string  `json:"dedicatoria"`
}
