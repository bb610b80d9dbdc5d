// internal/workers/notification/send-notification/templates.go
package sendnotification

import (
	"fmt"
	"strings"

	"mortgage-workers/internal/models"
)

var templates = map[string]models.NotificationTemplate{
	TypeApplicationReceived: {
		ID:      "tmpl-application-received",
		Type:    TypeApplicationReceived,
		Subject: "Mortgage Application {{applicationId}} Received",
		Body: "Thank you for your application. Your reference number is {{applicationId}}. " +
			"A loan officer will review it shortly.",
		Version: "1",
	},
	TypeStatusUpdate: {
		ID:      "tmpl-status-update",
		Type:    TypeStatusUpdate,
		Subject: "Update on Application {{applicationId}}",
		Body:    "Your mortgage application {{applicationId}} is now {{status}}.",
		Version: "1",
	},
	TypeDocumentsNeeded: {
		ID:      "tmpl-documents-needed",
		Type:    TypeDocumentsNeeded,
		Subject: "Documents Needed for Application {{applicationId}}",
		Body: "We still need the following to continue processing {{applicationId}}: {{missingFields}}. " +
			"Please reply with the missing information.",
		Version: "1",
	},
}

// Simplified template rendering with placeholder removal for missing values
func renderTemplate(tmpl string, data map[string]interface{}) string {
	result := tmpl

	for k, v := range data {
		placeholder := "{{" + k + "}}"
		value := ""
		if s, ok := v.(string); ok {
			value = s
		} else if v != nil {
			value = fmt.Sprintf("%v", v)
		}
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Remove any remaining placeholders (missing values)
	for {
		start := strings.Index(result, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], "}}")
		if end == -1 {
			break
		}
		end += start + 2
		result = result[:start] + result[end:]
	}

	return result
}
