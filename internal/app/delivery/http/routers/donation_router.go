package routers

import (
	"donaciones-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDonationRouter(router chi.Router, ctrl *controllers.DonationController) {
	router.Post("/checkout", ctrl.CreateCheckout)
	router.Post("/subscribe", ctrl.CreateSubscription)
}
