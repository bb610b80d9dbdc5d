// internal/workers/notification/send-notification/models.go
package sendnotification

type Input struct {
	ApplicationID    string                 `json:"applicationId,omitempty"`
	RecipientEmail   string                 `json:"recipientEmail,omitempty"`
	RecipientPhone   string                 `json:"recipientPhone,omitempty"`
	NotificationType string                 `json:"notificationType"`
	Priority         string                 `json:"priority,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"` // "sent", "failed", "disabled"
	SentAt         string `json:"sentAt"` // ISO 8601
}

// Notification types with built-in templates.
const (
	TypeApplicationReceived = "application_received"
	TypeStatusUpdate        = "status_update"
	TypeDocumentsNeeded     = "documents_needed"
)
