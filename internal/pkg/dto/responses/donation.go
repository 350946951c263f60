package responses

// InitPointResponse carries the provider redirect URL for the donor.
type InitPointResponse struct {
	InitPoint string `json:"init_point"`
}
