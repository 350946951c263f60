package controllers

import (
	"context"
	"donaciones-service/internal/pkg/dto/requests"
	"donaciones-service/internal/pkg/dto/responses"
	"donaciones-service/internal/pkg/exceptions"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDonationUsecase struct {
	processErr      error
	processed       []*requests.WebhookNotification
	checkoutErr     error
	subscriptionErr error
}

func (f *fakeDonationUsecase) ProcessNotification(ctx context.Context, notification *requests.WebhookNotification) error {
	f.processed = append(f.processed, notification)
	return f.processErr
}

func (f *fakeDonationUsecase) CreateCheckout(ctx context.Context, request *requests.CheckoutRequest) (*responses.InitPointResponse, error) {
	if f.checkoutErr != nil {
		return nil, f.checkoutErr
	}
	return &responses.InitPointResponse{InitPoint: "https://mp.example/init"}, nil
}

func (f *fakeDonationUsecase) CreateSubscription(ctx context.Context, request *requests.SubscribeRequest) (*responses.InitPointResponse, error) {
	if f.subscriptionErr != nil {
		return nil, f.subscriptionErr
	}
	return &responses.InitPointResponse{InitPoint: "https://mp.example/subscribe"}, nil
}

func postWebhook(ctrl *WebhookController, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/mercadopago", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.HandleMercadoPagoWebhook(rec, req)
	return rec
}

func TestHandleMercadoPagoWebhook(t *testing.T) {
	t.Run("acknowledges a processed notification", func(t *testing.T) {
		usecase := &fakeDonationUsecase{}
		ctrl := NewWebhookController(zap.NewNop(), usecase)

		rec := postWebhook(ctrl, `{"type":"payment","data":{"id":"123"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		require.Len(t, usecase.processed, 1)
		assert.Equal(t, "payment", usecase.processed[0].Type)
		assert.Equal(t, "123", usecase.processed[0].ResourceID())
	})

	t.Run("returns 500 when the pipeline fails so the provider retries", func(t *testing.T) {
		usecase := &fakeDonationUsecase{processErr: errors.New("append failed")}
		ctrl := NewWebhookController(zap.NewNop(), usecase)

		rec := postWebhook(ctrl, `{"type":"payment","data":{"id":"123"}}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("returns 500 on an unparseable body", func(t *testing.T) {
		usecase := &fakeDonationUsecase{}
		ctrl := NewWebhookController(zap.NewNop(), usecase)

		rec := postWebhook(ctrl, `{"type":`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, usecase.processed)
	})

	t.Run("pipeline errors from known taxonomy still fail the delivery", func(t *testing.T) {
		usecase := &fakeDonationUsecase{processErr: exceptions.ErrNoChargeFound("SUB1")}
		ctrl := NewWebhookController(zap.NewNop(), usecase)

		rec := postWebhook(ctrl, `{"type":"subscription_authorized_payment","data":{"id":"SUB1"}}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
