package contracts

import (
	"context"
	"donaciones-service/internal/pkg/mp_dto"
)

// PaymentGatewayClient fetches authoritative resource state from the payment
// provider and creates donor-facing checkout redirects. Fetches are never
// cached: each webhook pipeline reads fresh state.
type PaymentGatewayClient interface {
	// FetchPayment reads a payment resource by id (checkout product area).
	FetchPayment(ctx context.Context, paymentID string) (*mp_dto.Payment, error)
	// FetchSubscription reads a preapproval resource by id (subscription
	// product area).
	FetchSubscription(ctx context.Context, preapprovalID string) (*mp_dto.Preapproval, error)
	// FetchLatestCharge resolves the most recent authorized charge of a
	// subscription: list limited to one, then fetch the charge detail.
	FetchLatestCharge(ctx context.Context, preapprovalID string) (*mp_dto.Payment, error)

	// Creation collaborators for the donor-facing endpoints.
	CreatePreference(ctx context.Context, request *mp_dto.CreatePreference) (*mp_dto.PreferenceResult, error)
	CreatePreapproval(ctx context.Context, request *mp_dto.CreatePreapproval) (*mp_dto.PreapprovalResult, error)
}
