package donations

import (
	"donaciones-service/internal/app/models"
	"donaciones-service/internal/pkg/constvars"
	"donaciones-service/internal/pkg/mp_dto"
	"strings"
)

// ClassifyPayment derives the donation category from an authoritative payment
// resource. Pure, no I/O, total: anything it cannot recognize is one-time,
// the most conservative category.
//
// A payment is monthly only when its free-text description carries the fixed
// recurring-donation prefix set at subscription time. Nothing else on the
// resource can promote it. When a monthly payment also carries an invoice
// period, the category refines to the numbered installment.
func ClassifyPayment(payment *mp_dto.Payment) models.DonationCategory {
	if payment == nil {
		return models.OneTime()
	}

	if !strings.HasPrefix(payment.Description, constvars.MPRecurringDescriptionPrefix) {
		return models.OneTime()
	}

	if payment.InvoicePeriod != nil && payment.InvoicePeriod.Period > 0 {
		return models.MonthlyInstallment(payment.InvoicePeriod.Period)
	}
	return models.Monthly()
}

// ClassifySubscription is fixed: an approved preapproval is always
// subscription-approved. Installment numbering only becomes meaningful once
// a concrete charge resource exists.
func ClassifySubscription(preapproval *mp_dto.Preapproval) models.DonationCategory {
	return models.SubscriptionApproved()
}
