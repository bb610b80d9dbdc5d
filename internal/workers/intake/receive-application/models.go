// internal/workers/intake/receive-application/models.go
package receiveapplication

import "mortgage-workers/internal/parse"

type Input struct {
	Parsed *parse.Record `json:"parsed"`
}

type Output struct {
	ApplicationID     string  `json:"applicationId"`
	ApplicationStatus string  `json:"applicationStatus"`
	PropertyValue     float64 `json:"propertyValue,omitempty"`
	CreatedAt         string  `json:"createdAt"` // ISO 8601
}
