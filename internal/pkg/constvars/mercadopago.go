package constvars

// Mercado Pago notification types as delivered on the webhook. The provider
// retries any non-2xx response, so unknown types must still be acknowledged.
const (
	MPNotificationPayment           = "payment"
	MPNotificationManualFree        = "manual_free"
	MPNotificationPreapproval       = "subscription_preapproval"
	MPNotificationPreapprovalLegacy = "preapproval"
	MPNotificationPreapprovalPlan   = "subscription_preapproval_plan"
	MPNotificationAuthorizedPayment = "subscription_authorized_payment"
)

// Resource statuses that yield a ledger write. Every other status is
// acknowledged and ignored.
const (
	MPPaymentStatusApproved       = "approved"
	MPPreapprovalStatusAuthorized = "authorized"
)

const (
	MPPaymentsPath          = "/v1/payments/%s"
	MPPreapprovalPath       = "/v1/preapproval/%s"
	MPAuthorizedSearchPath  = "/v1/preapproval/%s/authorized_payments/search?limit=1"
	MPAuthorizedPaymentPath = "/v1/preapproval/%s/authorized_payments/%s"
	MPCreatePreferencePath  = "/checkout/preferences"
	MPCreatePreapprovalPath = "/preapproval"
)

// Recurring donations carry a fixed reason prefix set at subscription time
// ("Suscripción mensual - <opción>"). The classifier keys on it.
const MPRecurringDescriptionPrefix = "Suscripción mensual"

const MPCurrencyCLP = "CLP"
