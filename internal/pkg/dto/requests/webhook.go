package requests

import "donaciones-service/internal/pkg/mp_dto"

// WebhookNotification is the inbound push message from Mercado Pago. It
// carries an identifier, not the truth: handlers must read the resource back
// before trusting anything. Delivery is at-least-once and unordered.
type WebhookNotification struct {
	ID       int64                 `json:"id,omitempty"`
	Type     string                `json:"type"`
	Action   string                `json:"action,omitempty"`
	LiveMode bool                  `json:"live_mode,omitempty"`
	Data     *WebhookData          `json:"data,omitempty"`
	Metadata *mp_dto.DonorMetadata `json:"metadata,omitempty"`
}

type WebhookData struct {
	ID string `json:"id"`
}

// ResourceID returns data.id or "" when the notification carries none.
func (n *WebhookNotification) ResourceID() string {
	if n.Data == nil {
		return ""
	}
	return n.Data.ID
}
