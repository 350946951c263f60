package controllers

import (
	"donaciones-service/internal/app/contracts"
	"donaciones-service/internal/pkg/constvars"
	"donaciones-service/internal/pkg/dto/requests"
	"donaciones-service/internal/pkg/exceptions"
	"donaciones-service/internal/pkg/utils"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"
)

type WebhookController struct {
	Log     *zap.Logger
	Usecase contracts.DonationUsecase
}

func NewWebhookController(logger *zap.Logger, usecase contracts.DonationUsecase) *WebhookController {
	return &WebhookController{Log: logger, Usecase: usecase}
}

// HandleMercadoPagoWebhook processes POST /api/v1/webhooks/mercadopago.
//
// The acknowledgment is written only after the full pipeline, ledger append
// included, has finished: the provider's retry-on-non-2xx is the sole
// at-least-once mechanism, so acking early would drop events.
func (ctrl *WebhookController) HandleMercadoPagoWebhook(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildWebhookFailure(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}
	defer r.Body.Close()

	var notification requests.WebhookNotification
	if err := json.Unmarshal(raw, &notification); err != nil {
		utils.BuildWebhookFailure(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctrl.Log.Info("webhook received",
		zap.String(constvars.LoggingEventTypeKey, notification.Type),
		zap.String(constvars.LoggingResourceIDKey, notification.ResourceID()),
	)

	if err := ctrl.Usecase.ProcessNotification(r.Context(), &notification); err != nil {
		utils.BuildWebhookFailure(ctrl.Log, w, err)
		return
	}

	utils.BuildWebhookAck(w)
}
