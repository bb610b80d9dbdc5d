// internal/models/notification.go
package models

type Notification struct {
	ID             string                 `json:"id"`
	ApplicationID  string                 `json:"applicationId"`
	RecipientEmail string                 `json:"recipientEmail,omitempty"`
	RecipientPhone string                 `json:"recipientPhone,omitempty"`
	Type           string                 `json:"type"`     // "application_received", "status_update", "documents_needed"
	Channel        string                 `json:"channel"`  // "email", "sms"
	Priority       string                 `json:"priority"` // "low", "normal", "high"
	Status         string                 `json:"status"`   // "sent", "failed", "disabled"
	Payload        map[string]interface{} `json:"payload,omitempty"`
	SentAt         string                 `json:"sentAt,omitempty"`
	CreatedAt      string                 `json:"createdAt"`
}

type NotificationTemplate struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Version string `json:"version"`
}

const (
	NotificationStatusSent     = "sent"
	NotificationStatusFailed   = "failed"
	NotificationStatusDisabled = "disabled"

	NotificationChannelEmail = "email"
	NotificationChannelSMS   = "sms"

	NotificationPriorityHigh = "high"
)
