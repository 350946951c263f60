package donations

import (
	"context"
	"donaciones-service/internal/app/config"
	"donaciones-service/internal/app/contracts"
	"donaciones-service/internal/app/models"
	"donaciones-service/internal/pkg/constvars"
	"donaciones-service/internal/pkg/dto/requests"
	"donaciones-service/internal/pkg/dto/responses"
	"donaciones-service/internal/pkg/exceptions"
	"donaciones-service/internal/pkg/mp_dto"
	"donaciones-service/internal/pkg/utils"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type usecase struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	gateway contracts.PaymentGatewayClient
	ledger  contracts.LedgerSink
}

func NewDonationUsecase(log *zap.Logger, cfg *config.InternalConfig, gateway contracts.PaymentGatewayClient, ledger contracts.LedgerSink) contracts.DonationUsecase {
	return &usecase{
		log:     log,
		cfg:     cfg,
		gateway: gateway,
		ledger:  ledger,
	}
}

// ProcessNotification runs one reconciliation pipeline: inspect the kind,
// read the authoritative resource back, classify it, and append at most one
// ledger row. The notification itself is never trusted beyond its type and
// resource id.
//
// Unknown kinds and malformed deliveries return nil: the provider must not
// be made to retry a payload it will never understand. Any fetch or append
// failure aborts the remaining steps and bubbles up so the provider retries
// the whole delivery.
func (u *usecase) ProcessNotification(ctx context.Context, notification *requests.WebhookNotification) error {
	kind := models.ParseNotificationKind(notification.Type)

	if kind == models.KindUnknown {
		u.log.Warn("donations.ProcessNotification unrecognized event type",
			zap.String(constvars.LoggingEventTypeKey, notification.Type),
		)
		return nil
	}

	resourceID := notification.ResourceID()
	if kind.RequiresResourceID() && resourceID == "" {
		u.log.Warn("donations.ProcessNotification malformed event, missing data.id",
			zap.String(constvars.LoggingEventTypeKey, notification.Type),
		)
		return nil
	}

	switch kind {
	case models.KindPayment:
		return u.reconcilePayment(ctx, resourceID)
	case models.KindManualFree:
		return u.recordManualDonation(ctx, notification.Metadata)
	case models.KindSubscriptionPreapproval, models.KindSubscriptionPreapprovalPlan:
		return u.reconcilePreapproval(ctx, resourceID)
	case models.KindSubscriptionAuthorizedPayment:
		return u.reconcileSubscriptionCharge(ctx, resourceID)
	default:
		return nil
	}
}

func (u *usecase) reconcilePayment(ctx context.Context, paymentID string) error {
	payment, err := u.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		return err
	}

	if payment.Status != constvars.MPPaymentStatusApproved {
		u.log.Info("donations.reconcilePayment ignoring non-approved payment",
			zap.String(constvars.LoggingResourceIDKey, paymentID),
			zap.String("status", payment.Status),
		)
		return nil
	}

	category := ClassifyPayment(payment)
	u.log.Info("donations.reconcilePayment writing ledger row",
		zap.String(constvars.LoggingResourceIDKey, paymentID),
		zap.String(constvars.LoggingCategoryKey, category.Label()),
		zap.Float64(constvars.LoggingAmountKey, payment.TransactionAmount),
	)
	return u.ledger.Append(ctx, u.buildRow(category, &payment.Metadata, payment.TransactionAmount))
}

func (u *usecase) recordManualDonation(ctx context.Context, metadata *mp_dto.DonorMetadata) error {
	if metadata == nil {
		metadata = &mp_dto.DonorMetadata{}
	}

	u.log.Info("donations.recordManualDonation writing ledger row",
		zap.String(constvars.LoggingCategoryKey, models.Manual().Label()),
	)
	return u.ledger.Append(ctx, u.buildRow(models.Manual(), metadata, 0))
}

func (u *usecase) reconcilePreapproval(ctx context.Context, preapprovalID string) error {
	preapproval, err := u.gateway.FetchSubscription(ctx, preapprovalID)
	if err != nil {
		return err
	}

	if preapproval.Status != constvars.MPPreapprovalStatusAuthorized {
		u.log.Info("donations.reconcilePreapproval ignoring non-authorized subscription",
			zap.String(constvars.LoggingResourceIDKey, preapprovalID),
			zap.String("status", preapproval.Status),
		)
		return nil
	}

	category := ClassifySubscription(preapproval)
	u.log.Info("donations.reconcilePreapproval writing ledger row",
		zap.String(constvars.LoggingResourceIDKey, preapprovalID),
		zap.String(constvars.LoggingCategoryKey, category.Label()),
		zap.Float64(constvars.LoggingAmountKey, preapproval.AutoRecurring.TransactionAmount),
	)
	return u.ledger.Append(ctx, u.buildRow(category, &preapproval.Metadata, preapproval.AutoRecurring.TransactionAmount))
}

func (u *usecase) reconcileSubscriptionCharge(ctx context.Context, preapprovalID string) error {
	charge, err := u.gateway.FetchLatestCharge(ctx, preapprovalID)
	if err != nil {
		return err
	}

	if charge.Status != constvars.MPPaymentStatusApproved {
		u.log.Info("donations.reconcileSubscriptionCharge ignoring non-approved charge",
			zap.String(constvars.LoggingResourceIDKey, preapprovalID),
			zap.String("status", charge.Status),
		)
		return nil
	}

	category := ClassifyPayment(charge)
	u.log.Info("donations.reconcileSubscriptionCharge writing ledger row",
		zap.String(constvars.LoggingResourceIDKey, preapprovalID),
		zap.String(constvars.LoggingCategoryKey, category.Label()),
		zap.Int(constvars.LoggingInstallmentKey, category.Installment),
	)
	return u.ledger.Append(ctx, u.buildRow(category, &charge.Metadata, charge.TransactionAmount))
}

// buildRow maps donor metadata and the confirmed amount onto the sheet's
// fixed column order. The donor-entered amount wins over the transaction
// amount when both are present.
func (u *usecase) buildRow(category models.DonationCategory, metadata *mp_dto.DonorMetadata, transactionAmount float64) *models.LedgerRow {
	amount := metadata.Amount
	if amount == 0 {
		amount = transactionAmount
	}

	return &models.LedgerRow{
		Timestamp:  utils.LedgerTimestamp(time.Now()),
		Category:   category.Label(),
		Contact:    metadata.Contact,
		Email:      metadata.Email,
		RUT:        metadata.RUT,
		Option:     metadata.Option,
		Amount:     utils.FormatCLP(amount),
		Dedication: metadata.Dedication,
	}
}

func (u *usecase) CreateCheckout(ctx context.Context, request *requests.CheckoutRequest) (*responses.InitPointResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	preference := &mp_dto.CreatePreference{
		Items: []mp_dto.PreferenceItem{
			{
				ID:         "donacion",
				Title:      request.Option,
				UnitPrice:  request.Amount,
				Quantity:   1,
				CurrencyID: constvars.MPCurrencyCLP,
			},
		},
		BackURLs:          u.backURLs(),
		NotificationURL:   u.notificationURL(),
		ExternalReference: request.Email,
		Metadata: mp_dto.DonorMetadata{
			Contact:    request.Contact,
			Email:      request.Email,
			RUT:        request.RUT,
			Option:     request.Option,
			Amount:     request.Amount,
			Dedication: request.Dedication,
		},
		Payer: &mp_dto.Payer{Name: "Donante", Email: request.Email},
	}

	result, err := u.gateway.CreatePreference(ctx, preference)
	if err != nil {
		return nil, err
	}
	return &responses.InitPointResponse{InitPoint: result.InitPoint}, nil
}

func (u *usecase) CreateSubscription(ctx context.Context, request *requests.SubscribeRequest) (*responses.InitPointResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	preapproval := &mp_dto.CreatePreapproval{
		// The reason doubles as the classifier's recurring marker on every
		// charge this subscription produces later.
		Reason: fmt.Sprintf("%s - %s", constvars.MPRecurringDescriptionPrefix, request.Option),
		AutoRecurring: mp_dto.AutoRecurring{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: request.Amount,
			CurrencyID:        constvars.MPCurrencyCLP,
		},
		PayerEmail:        request.Email,
		BackURL:           u.cfg.App.BaseURL + "/success",
		Status:            "pending",
		ExternalReference: request.RUT,
		NotificationURL:   u.notificationURL(),
		Metadata: mp_dto.DonorMetadata{
			Contact:    request.Contact,
			Email:      request.Email,
			RUT:        request.RUT,
			Option:     request.Option,
			Amount:     request.Amount,
			Dedication: request.Dedication,
		},
	}

	result, err := u.gateway.CreatePreapproval(ctx, preapproval)
	if err != nil {
		return nil, err
	}
	return &responses.InitPointResponse{InitPoint: result.InitPoint}, nil
}

func (u *usecase) backURLs() *mp_dto.BackURLs {
	base := u.cfg.App.BaseURL
	if base == "" {
		return nil
	}
	return &mp_dto.BackURLs{
		Success: base + "/success",
		Failure: base + "/failure",
		Pending: base + "/pending",
	}
}

// notificationURL is omitted for local development: the provider cannot
// reach a loopback address and rejects it at creation time.
func (u *usecase) notificationURL() string {
	base := u.cfg.App.BaseURL
	if base == "" || strings.Contains(base, "localhost") || strings.Contains(base, "127.0.0.1") {
		return ""
	}
	return base + "/api/v1/webhooks/mercadopago"
}
