package routers

import (
	"donaciones-service/internal/app/config"
	"donaciones-service/internal/app/delivery/http/controllers"
	"donaciones-service/internal/app/delivery/http/middlewares"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
	requestLog *logrus.Logger,
	middlewares *middlewares.Middlewares,
	webhookController *controllers.WebhookController,
	donationController *controllers.DonationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(log))
	router.Use(middlewares.RequestLogger(requestLog))
	router.Use(middlewares.Recoverer)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/webhooks", func(r chi.Router) {
				attachWebhookRouter(r, webhookController)
			})

			r.Route("/donations", func(r chi.Router) {
				attachDonationRouter(r, donationController)
			})
		})
	})
}
