package payment_gateway

import (
	"bytes"
	"context"
	"donaciones-service/internal/app/config"
	"donaciones-service/internal/app/contracts"
	"donaciones-service/internal/pkg/constvars"
	"donaciones-service/internal/pkg/exceptions"
	"donaciones-service/internal/pkg/mp_dto"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type mercadoPagoClient struct {
	BaseURL                 string
	CheckoutAccessToken     string
	SubscriptionAccessToken string
	Log                     *zap.Logger

	client  *http.Client
	limiter *rate.Limiter
}

func NewMercadoPagoClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayClient {
	rps := internalConfig.MercadoPago.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	return &mercadoPagoClient{
		BaseURL:                 internalConfig.MercadoPago.BaseURL,
		CheckoutAccessToken:     internalConfig.MercadoPago.CheckoutAccessToken,
		SubscriptionAccessToken: internalConfig.MercadoPago.SubscriptionAccessToken,
		Log:                     logger,
		client:                  &http.Client{},
		limiter:                 rate.NewLimiter(rate.Limit(rps), int(rps)),
	}
}

// get performs one authenticated read and decodes the body into out. A
// non-2xx response surfaces the upstream status text verbatim so operators
// can tell a 401 (wrong token area) from a 404 (stale notification).
func (c *mercadoPagoClient) get(ctx context.Context, path, accessToken string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return exceptions.ErrSendRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return exceptions.ErrBuildRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+accessToken)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return exceptions.ErrSendRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Log.Error("mercadoPagoClient read failed",
			zap.String(constvars.LoggingEndpointKey, path),
			zap.String(constvars.LoggingUpstreamKey, resp.Status),
		)
		return exceptions.ErrUpstreamUnavailable(resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return exceptions.ErrDecodeResponse(err)
	}
	return nil
}

func (c *mercadoPagoClient) FetchPayment(ctx context.Context, paymentID string) (*mp_dto.Payment, error) {
	c.Log.Info("mercadoPagoClient.FetchPayment called",
		zap.String(constvars.LoggingResourceIDKey, paymentID),
	)

	payment := new(mp_dto.Payment)
	err := c.get(ctx, fmt.Sprintf(constvars.MPPaymentsPath, paymentID), c.CheckoutAccessToken, payment)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (c *mercadoPagoClient) FetchSubscription(ctx context.Context, preapprovalID string) (*mp_dto.Preapproval, error) {
	c.Log.Info("mercadoPagoClient.FetchSubscription called",
		zap.String(constvars.LoggingResourceIDKey, preapprovalID),
	)

	preapproval := new(mp_dto.Preapproval)
	err := c.get(ctx, fmt.Sprintf(constvars.MPPreapprovalPath, preapprovalID), c.SubscriptionAccessToken, preapproval)
	if err != nil {
		return nil, err
	}
	return preapproval, nil
}

func (c *mercadoPagoClient) FetchLatestCharge(ctx context.Context, preapprovalID string) (*mp_dto.Payment, error) {
	c.Log.Info("mercadoPagoClient.FetchLatestCharge called",
		zap.String(constvars.LoggingResourceIDKey, preapprovalID),
	)

	search := new(mp_dto.AuthorizedPaymentSearch)
	err := c.get(ctx, fmt.Sprintf(constvars.MPAuthorizedSearchPath, preapprovalID), c.SubscriptionAccessToken, search)
	if err != nil {
		return nil, err
	}

	// An empty result set is user-diagnosable, not transient: the provider
	// notified a charge it cannot list. Do not retry blindly.
	if len(search.Results) == 0 {
		return nil, exceptions.ErrNoChargeFound(preapprovalID)
	}

	charge := new(mp_dto.Payment)
	err = c.get(ctx, fmt.Sprintf(constvars.MPAuthorizedPaymentPath, preapprovalID, search.Results[0].ID), c.SubscriptionAccessToken, charge)
	if err != nil {
		return nil, err
	}
	return charge, nil
}

// post issues one authenticated creation call. Creation is retried on 5xx
// with bounded exponential backoff; creating a preference or preapproval
// charges nobody, so a duplicate attempt is harmless.
func (c *mercadoPagoClient) post(ctx context.Context, path, accessToken string, body, out interface{}) error {
	requestJSON, err := json.Marshal(body)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	operation := func() (struct{}, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return struct{}{}, backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseURL+path, bytes.NewReader(requestJSON))
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+accessToken)
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

		resp, err := c.client.Do(req)
		if err != nil {
			return struct{}{}, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return struct{}{}, fmt.Errorf("upstream %s", resp.Status)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return struct{}{}, backoff.Permanent(exceptions.ErrUpstreamUnavailable(resp.Status))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, nil
	}

	_, err = backoff.Retry(ctx, operation, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(3))
	return err
}

func (c *mercadoPagoClient) CreatePreference(ctx context.Context, request *mp_dto.CreatePreference) (*mp_dto.PreferenceResult, error) {
	c.Log.Info("mercadoPagoClient.CreatePreference called")

	result := new(mp_dto.PreferenceResult)
	err := c.post(ctx, constvars.MPCreatePreferencePath, c.CheckoutAccessToken, request, result)
	if err != nil {
		return nil, exceptions.ErrCreatePreference(err)
	}
	return result, nil
}

func (c *mercadoPagoClient) CreatePreapproval(ctx context.Context, request *mp_dto.CreatePreapproval) (*mp_dto.PreapprovalResult, error) {
	c.Log.Info("mercadoPagoClient.CreatePreapproval called")

	result := new(mp_dto.PreapprovalResult)
	err := c.post(ctx, constvars.MPCreatePreapprovalPath, c.SubscriptionAccessToken, request, result)
	if err != nil {
		return nil, exceptions.ErrCreatePreapproval(err)
	}
	return result, nil
}
