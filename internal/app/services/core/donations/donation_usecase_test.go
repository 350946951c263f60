package donations

import (
	"context"
	"donaciones-service/internal/app/config"
	"donaciones-service/internal/app/models"
	"donaciones-service/internal/pkg/dto/requests"
	"donaciones-service/internal/pkg/exceptions"
	"donaciones-service/internal/pkg/mp_dto"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGateway struct {
	payment         *mp_dto.Payment
	paymentErr      error
	subscription    *mp_dto.Preapproval
	subscriptionErr error
	charge          *mp_dto.Payment
	chargeErr       error

	paymentCalls      int
	subscriptionCalls int
	chargeCalls       int
}

func (f *fakeGateway) FetchPayment(ctx context.Context, paymentID string) (*mp_dto.Payment, error) {
	f.paymentCalls++
	return f.payment, f.paymentErr
}

func (f *fakeGateway) FetchSubscription(ctx context.Context, preapprovalID string) (*mp_dto.Preapproval, error) {
	f.subscriptionCalls++
	return f.subscription, f.subscriptionErr
}

func (f *fakeGateway) FetchLatestCharge(ctx context.Context, preapprovalID string) (*mp_dto.Payment, error) {
	f.chargeCalls++
	return f.charge, f.chargeErr
}

func (f *fakeGateway) CreatePreference(ctx context.Context, request *mp_dto.CreatePreference) (*mp_dto.PreferenceResult, error) {
	return &mp_dto.PreferenceResult{ID: "pref-1", InitPoint: "https://mp.example/init"}, nil
}

func (f *fakeGateway) CreatePreapproval(ctx context.Context, request *mp_dto.CreatePreapproval) (*mp_dto.PreapprovalResult, error) {
	return &mp_dto.PreapprovalResult{ID: "sub-1", InitPoint: "https://mp.example/subscribe"}, nil
}

type fakeLedger struct {
	rows      []*models.LedgerRow
	appendErr error
}

func (f *fakeLedger) Append(ctx context.Context, row *models.LedgerRow) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.rows = append(f.rows, row)
	return nil
}

func newTestUsecase(gateway *fakeGateway, sink *fakeLedger) *usecase {
	cfg := &config.InternalConfig{
		App: config.App{BaseURL: "https://donaciones.example"},
	}
	return NewDonationUsecase(zap.NewNop(), cfg, gateway, sink).(*usecase)
}

func notification(eventType, resourceID string) *requests.WebhookNotification {
	n := &requests.WebhookNotification{Type: eventType}
	if resourceID != "" {
		n.Data = &requests.WebhookData{ID: resourceID}
	}
	return n
}

func TestProcessNotificationPayment(t *testing.T) {
	t.Run("approved one-time payment writes one row", func(t *testing.T) {
		gateway := &fakeGateway{
			payment: &mp_dto.Payment{
				Status:            "approved",
				TransactionAmount: 1000,
				Description:       "Donación única",
				Metadata:          mp_dto.DonorMetadata{Email: "a@b.cl"},
			},
		}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		err := uc.ProcessNotification(context.Background(), notification("payment", "P1"))

		require.NoError(t, err)
		require.Len(t, sink.rows, 1)
		assert.Equal(t, "one-time", sink.rows[0].Category)
		assert.Equal(t, "a@b.cl", sink.rows[0].Email)
		assert.Equal(t, "$1.000 CLP", sink.rows[0].Amount)
		assert.Equal(t, 1, gateway.paymentCalls)
	})

	t.Run("monthly payment with invoice period gets the installment label", func(t *testing.T) {
		gateway := &fakeGateway{
			payment: &mp_dto.Payment{
				Status:            "approved",
				TransactionAmount: 5000,
				Description:       "Suscripción mensual - Plan X",
				InvoicePeriod:     &mp_dto.InvoicePeriod{Period: 3, Type: "monthly"},
			},
		}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		err := uc.ProcessNotification(context.Background(), notification("payment", "P1"))

		require.NoError(t, err)
		require.Len(t, sink.rows, 1)
		assert.Equal(t, "monthly-installment(3)", sink.rows[0].Category)
	})

	t.Run("non-approved payment is silently ignored", func(t *testing.T) {
		gateway := &fakeGateway{
			payment: &mp_dto.Payment{Status: "pending", TransactionAmount: 1000},
		}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		err := uc.ProcessNotification(context.Background(), notification("payment", "P1"))

		require.NoError(t, err)
		assert.Empty(t, sink.rows)
	})

	t.Run("donor metadata amount wins over transaction amount", func(t *testing.T) {
		gateway := &fakeGateway{
			payment: &mp_dto.Payment{
				Status:            "approved",
				TransactionAmount: 990,
				Metadata:          mp_dto.DonorMetadata{Amount: 1000},
			},
		}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		err := uc.ProcessNotification(context.Background(), notification("payment", "P1"))

		require.NoError(t, err)
		require.Len(t, sink.rows, 1)
		assert.Equal(t, "$1.000 CLP", sink.rows[0].Amount)
	})

	t.Run("fetch failure aborts the pipeline", func(t *testing.T) {
		gateway := &fakeGateway{paymentErr: exceptions.ErrUpstreamUnavailable("502 Bad Gateway")}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		err := uc.ProcessNotification(context.Background(), notification("payment", "P1"))

		require.Error(t, err)
		assert.Empty(t, sink.rows)
	})

	t.Run("ledger failure surfaces and nothing is compensated", func(t *testing.T) {
		gateway := &fakeGateway{
			payment: &mp_dto.Payment{Status: "approved", TransactionAmount: 1000},
		}
		sink := &fakeLedger{appendErr: errors.New("quota exceeded")}
		uc := newTestUsecase(gateway, sink)

		err := uc.ProcessNotification(context.Background(), notification("payment", "P1"))

		require.Error(t, err)
		assert.Empty(t, sink.rows)
	})

	t.Run("redelivery appends a second row", func(t *testing.T) {
		gateway := &fakeGateway{
			payment: &mp_dto.Payment{Status: "approved", TransactionAmount: 1000},
		}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		require.NoError(t, uc.ProcessNotification(context.Background(), notification("payment", "P1")))
		require.NoError(t, uc.ProcessNotification(context.Background(), notification("payment", "P1")))

		assert.Len(t, sink.rows, 2)
	})
}

func TestProcessNotificationManualFree(t *testing.T) {
	t.Run("writes one manual row with amount zero", func(t *testing.T) {
		gateway := &fakeGateway{}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		n := notification("manual_free", "")
		n.Metadata = &mp_dto.DonorMetadata{Contact: "Juana", Email: "j@b.cl", Option: "Socio"}

		err := uc.ProcessNotification(context.Background(), n)

		require.NoError(t, err)
		require.Len(t, sink.rows, 1)
		assert.Equal(t, "manual", sink.rows[0].Category)
		assert.Equal(t, "$0 CLP", sink.rows[0].Amount)
		assert.Equal(t, "Juana", sink.rows[0].Contact)
		assert.Zero(t, gateway.paymentCalls)
	})

	t.Run("missing metadata still writes a row", func(t *testing.T) {
		sink := &fakeLedger{}
		uc := newTestUsecase(&fakeGateway{}, sink)

		err := uc.ProcessNotification(context.Background(), notification("manual_free", ""))

		require.NoError(t, err)
		require.Len(t, sink.rows, 1)
		assert.Equal(t, "manual", sink.rows[0].Category)
	})
}

func TestProcessNotificationPreapproval(t *testing.T) {
	authorized := &mp_dto.Preapproval{
		Status:        "authorized",
		Reason:        "Suscripción mensual - Plan X",
		AutoRecurring: mp_dto.AutoRecurring{TransactionAmount: 5000},
		Metadata:      mp_dto.DonorMetadata{Email: "a@b.cl"},
	}

	for _, eventType := range []string{"subscription_preapproval", "preapproval", "subscription_preapproval_plan"} {
		t.Run(eventType+" writes subscription-approved row", func(t *testing.T) {
			gateway := &fakeGateway{subscription: authorized}
			sink := &fakeLedger{}
			uc := newTestUsecase(gateway, sink)

			err := uc.ProcessNotification(context.Background(), notification(eventType, "S1"))

			require.NoError(t, err)
			require.Len(t, sink.rows, 1)
			assert.Equal(t, "subscription-approved", sink.rows[0].Category)
			assert.Equal(t, "$5.000 CLP", sink.rows[0].Amount)
			assert.Equal(t, 1, gateway.subscriptionCalls)
		})
	}

	t.Run("pending subscription is silently ignored", func(t *testing.T) {
		gateway := &fakeGateway{subscription: &mp_dto.Preapproval{Status: "pending"}}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		err := uc.ProcessNotification(context.Background(), notification("subscription_preapproval", "S1"))

		require.NoError(t, err)
		assert.Empty(t, sink.rows)
	})
}

func TestProcessNotificationSubscriptionCharge(t *testing.T) {
	t.Run("approved charge writes installment row", func(t *testing.T) {
		gateway := &fakeGateway{
			charge: &mp_dto.Payment{
				Status:            "approved",
				TransactionAmount: 5000,
				Description:       "Suscripción mensual - Plan X",
				InvoicePeriod:     &mp_dto.InvoicePeriod{Period: 2},
			},
		}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		err := uc.ProcessNotification(context.Background(), notification("subscription_authorized_payment", "S1"))

		require.NoError(t, err)
		require.Len(t, sink.rows, 1)
		assert.Equal(t, "monthly-installment(2)", sink.rows[0].Category)
		assert.Equal(t, 1, gateway.chargeCalls)
	})

	t.Run("empty charge search surfaces a failure", func(t *testing.T) {
		gateway := &fakeGateway{chargeErr: exceptions.ErrNoChargeFound("S1")}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		err := uc.ProcessNotification(context.Background(), notification("subscription_authorized_payment", "S1"))

		require.Error(t, err)
		assert.Empty(t, sink.rows)
	})
}

func TestProcessNotificationEdgeCases(t *testing.T) {
	t.Run("unrecognized type is acknowledged with zero writes", func(t *testing.T) {
		gateway := &fakeGateway{}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		err := uc.ProcessNotification(context.Background(), notification("plan.updated", "X1"))

		require.NoError(t, err)
		assert.Empty(t, sink.rows)
		assert.Zero(t, gateway.paymentCalls)
		assert.Zero(t, gateway.subscriptionCalls)
		assert.Zero(t, gateway.chargeCalls)
	})

	t.Run("recognized type without data.id is malformed, acknowledged, no write", func(t *testing.T) {
		gateway := &fakeGateway{}
		sink := &fakeLedger{}
		uc := newTestUsecase(gateway, sink)

		err := uc.ProcessNotification(context.Background(), notification("payment", ""))

		require.NoError(t, err)
		assert.Empty(t, sink.rows)
		assert.Zero(t, gateway.paymentCalls)
	})
}

func TestCreateCheckout(t *testing.T) {
	t.Run("returns the provider init point", func(t *testing.T) {
		uc := newTestUsecase(&fakeGateway{}, &fakeLedger{})

		response, err := uc.CreateCheckout(context.Background(), &requests.CheckoutRequest{
			Email:  "a@b.cl",
			Option: "Socio",
			Amount: 10000,
		})

		require.NoError(t, err)
		assert.Equal(t, "https://mp.example/init", response.InitPoint)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc := newTestUsecase(&fakeGateway{}, &fakeLedger{})

		_, err := uc.CreateCheckout(context.Background(), &requests.CheckoutRequest{
			Email:  "a@b.cl",
			Option: "Socio",
			Amount: 0,
		})

		require.Error(t, err)
	})

	t.Run("rejects a missing option", func(t *testing.T) {
		uc := newTestUsecase(&fakeGateway{}, &fakeLedger{})

		_, err := uc.CreateCheckout(context.Background(), &requests.CheckoutRequest{
			Email:  "a@b.cl",
			Amount: 1000,
		})

		require.Error(t, err)
	})
}

func TestCreateSubscription(t *testing.T) {
	uc := newTestUsecase(&fakeGateway{}, &fakeLedger{})

	response, err := uc.CreateSubscription(context.Background(), &requests.SubscribeRequest{
		Email:  "a@b.cl",
		Option: "Plan X",
		Amount: 5000,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://mp.example/subscribe", response.InitPoint)
}

func TestNotificationURLSkipsLoopback(t *testing.T) {
	uc := newTestUsecase(&fakeGateway{}, &fakeLedger{})
	uc.cfg.App.BaseURL = "http://localhost:3000"
	assert.Empty(t, uc.notificationURL())

	uc.cfg.App.BaseURL = "https://donaciones.example"
	assert.Equal(t, "https://donaciones.example/api/v1/webhooks/mercadopago", uc.notificationURL())
}
