package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Donation messages
	CheckoutCreatedSuccessMessage     = "checkout created successfully"
	SubscriptionCreatedSuccessMessage = "subscription created successfully"
)
