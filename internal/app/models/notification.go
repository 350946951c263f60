package models

import "donaciones-service/internal/pkg/constvars"

// NotificationKind is the closed set of webhook event kinds this service
// understands. Dispatch switches over it rather than over the raw type string
// so an unhandled kind is visible at a glance.
type NotificationKind int

const (
	KindUnknown NotificationKind = iota
	KindPayment
	KindManualFree
	KindSubscriptionPreapproval
	KindSubscriptionPreapprovalPlan
	KindSubscriptionAuthorizedPayment
)

// ParseNotificationKind maps the provider's type string onto the closed set.
// The legacy "preapproval" alias folds into the preapproval kind.
func ParseNotificationKind(eventType string) NotificationKind {
	switch eventType {
	case constvars.MPNotificationPayment:
		return KindPayment
	case constvars.MPNotificationManualFree:
		return KindManualFree
	case constvars.MPNotificationPreapproval, constvars.MPNotificationPreapprovalLegacy:
		return KindSubscriptionPreapproval
	case constvars.MPNotificationPreapprovalPlan:
		return KindSubscriptionPreapprovalPlan
	case constvars.MPNotificationAuthorizedPayment:
		return KindSubscriptionAuthorizedPayment
	default:
		return KindUnknown
	}
}

// RequiresResourceID reports whether a kind is malformed without data.id.
// Manual fallback events carry their payload inline instead.
func (k NotificationKind) RequiresResourceID() bool {
	return k != KindUnknown && k != KindManualFree
}
