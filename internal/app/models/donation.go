package models

import "fmt"

// DonationCategory is the canonical classification of a confirmed financial
// event. Installment-bearing monthly charges carry the period number.
type DonationCategory struct {
	Kind        CategoryKind
	Installment int
}

type CategoryKind string

const (
	CategoryOneTime              CategoryKind = "one-time"
	CategoryMonthly              CategoryKind = "monthly"
	CategoryMonthlyInstallment   CategoryKind = "monthly-installment"
	CategoryManual               CategoryKind = "manual"
	CategorySubscriptionApproved CategoryKind = "subscription-approved"
)

func OneTime() DonationCategory {
	return DonationCategory{Kind: CategoryOneTime}
}

func Monthly() DonationCategory {
	return DonationCategory{Kind: CategoryMonthly}
}

func MonthlyInstallment(n int) DonationCategory {
	return DonationCategory{Kind: CategoryMonthlyInstallment, Installment: n}
}

func Manual() DonationCategory {
	return DonationCategory{Kind: CategoryManual}
}

func SubscriptionApproved() DonationCategory {
	return DonationCategory{Kind: CategorySubscriptionApproved}
}

// Label is the string written to the ledger's category column.
func (c DonationCategory) Label() string {
	if c.Kind == CategoryMonthlyInstallment {
		return fmt.Sprintf("%s(%d)", CategoryMonthlyInstallment, c.Installment)
	}
	return string(c.Kind)
}
