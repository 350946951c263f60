package routers

import (
	"context"
	"donaciones-service/internal/app/config"
	"donaciones-service/internal/app/delivery/http/controllers"
	"donaciones-service/internal/app/delivery/http/middlewares"
	"donaciones-service/internal/pkg/dto/requests"
	"donaciones-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubUsecase struct{}

func (stubUsecase) ProcessNotification(ctx context.Context, notification *requests.WebhookNotification) error {
	return nil
}

func (stubUsecase) CreateCheckout(ctx context.Context, request *requests.CheckoutRequest) (*responses.InitPointResponse, error) {
	return &responses.InitPointResponse{InitPoint: "https://mp.example/init"}, nil
}

func (stubUsecase) CreateSubscription(ctx context.Context, request *requests.SubscribeRequest) (*responses.InitPointResponse, error) {
	return &responses.InitPointResponse{InitPoint: "https://mp.example/subscribe"}, nil
}

func newTestRouter() *chi.Mux {
	cfg := &config.InternalConfig{
		App: config.App{
			EndpointPrefix: "api",
			Version:        "v1",
			MaxRequests:    100,
		},
	}
	log := zap.NewNop()
	requestLog := logrus.New()

	router := chi.NewRouter()
	SetupRoutes(
		router,
		cfg,
		log,
		requestLog,
		middlewares.NewMiddlewares(log, cfg),
		controllers.NewWebhookController(log, stubUsecase{}),
		controllers.NewDonationController(log, stubUsecase{}),
	)
	return router
}

func TestRouteWiring(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		expectedCode int
	}{
		{"webhook endpoint is mounted", http.MethodPost, "/api/v1/webhooks/mercadopago", `{"type":"payment","data":{"id":"1"}}`, http.StatusOK},
		{"checkout endpoint is mounted", http.MethodPost, "/api/v1/donations/checkout", `{"email":"a@b.cl","opcion":"Socio","monto":1000}`, http.StatusCreated},
		{"subscribe endpoint is mounted", http.MethodPost, "/api/v1/donations/subscribe", `{"email":"a@b.cl","opcion":"Plan X","monto":5000}`, http.StatusCreated},
		{"webhook rejects GET", http.MethodGet, "/api/v1/webhooks/mercadopago", "", http.StatusMethodNotAllowed},
		{"unknown path is 404", http.MethodPost, "/api/v1/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/mercadopago", strings.NewReader(`{"type":"payment","data":{"id":"1"}}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
