package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNotificationKind(t *testing.T) {
	tests := []struct {
		eventType string
		expected  NotificationKind
	}{
		{"payment", KindPayment},
		{"manual_free", KindManualFree},
		{"subscription_preapproval", KindSubscriptionPreapproval},
		{"preapproval", KindSubscriptionPreapproval},
		{"subscription_preapproval_plan", KindSubscriptionPreapprovalPlan},
		{"subscription_authorized_payment", KindSubscriptionAuthorizedPayment},
		{"plan.updated", KindUnknown},
		{"", KindUnknown},
		{"PAYMENT", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNotificationKind(tt.eventType))
		})
	}
}

func TestRequiresResourceID(t *testing.T) {
	assert.True(t, KindPayment.RequiresResourceID())
	assert.True(t, KindSubscriptionPreapproval.RequiresResourceID())
	assert.True(t, KindSubscriptionPreapprovalPlan.RequiresResourceID())
	assert.True(t, KindSubscriptionAuthorizedPayment.RequiresResourceID())
	assert.False(t, KindManualFree.RequiresResourceID())
	assert.False(t, KindUnknown.RequiresResourceID())
}
