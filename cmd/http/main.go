package main

import (
	"context"
	"donaciones-service/internal/app/config"
	"donaciones-service/internal/app/delivery/http/controllers"
	"donaciones-service/internal/app/delivery/http/middlewares"
	"donaciones-service/internal/app/delivery/http/routers"
	"donaciones-service/internal/app/drivers/logger"
	"donaciones-service/internal/app/services/core/donations"
	"donaciones-service/internal/app/services/shared/ledger"
	"donaciones-service/internal/app/services/shared/payment_gateway"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	requestLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Sugar().Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.MercadoPago.CheckoutAccessToken == "" || internalConfig.MercadoPago.SubscriptionAccessToken == "" {
		log.Fatal("Mercado Pago access tokens are not configured")
	}

	ledgerSink, err := ledger.NewSheetsLedgerService(context.Background(), internalConfig, log)
	if err != nil {
		log.Sugar().Fatalf("Error initializing ledger sink: %v", err)
	}

	gatewayClient := payment_gateway.NewMercadoPagoClient(internalConfig, log)
	donationUsecase := donations.NewDonationUsecase(log, internalConfig, gatewayClient, ledgerSink)

	webhookController := controllers.NewWebhookController(log, donationUsecase)
	donationController := controllers.NewDonationController(log, donationUsecase)

	appMiddlewares := middlewares.NewMiddlewares(log, internalConfig)
	routers.SetupRoutes(chiRouter, internalConfig, log, requestLog, appMiddlewares, webhookController, donationController)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that were already received to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Sugar().Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server exiting")
}
