package routers

import (
	"donaciones-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachWebhookRouter(router chi.Router, ctrl *controllers.WebhookController) {
	router.Post("/mercadopago", ctrl.HandleMercadoPagoWebhook)
}
