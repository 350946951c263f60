package contracts

import (
	"context"
	"donaciones-service/internal/pkg/dto/requests"
	"donaciones-service/internal/pkg/dto/responses"
)

// DonationUsecase is the reconciliation orchestrator plus the thin creation
// collaborators the donor form calls.
type DonationUsecase interface {
	// ProcessNotification runs one fetch → classify → append pipeline for a
	// webhook delivery. A nil return means the event was handled or
	// deliberately ignored; an error means the provider should retry.
	ProcessNotification(ctx context.Context, notification *requests.WebhookNotification) error

	CreateCheckout(ctx context.Context, request *requests.CheckoutRequest) (*responses.InitPointResponse, error)
	CreateSubscription(ctx context.Context, request *requests.SubscribeRequest) (*responses.InitPointResponse, error)
}
