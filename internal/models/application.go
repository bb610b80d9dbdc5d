// internal/models/application.go
package models

// Application is a stored mortgage application row. The parsed borrower
// fields live in the JSONB payload; top-level columns carry what the
// process needs for routing and lookups.
type Application struct {
	ID              int64                  `json:"id"`
	ApplicationID   string                 `json:"applicationId"`
	ApplicantName   string                 `json:"applicantName"`
	Email           string                 `json:"email,omitempty"`
	Phone           string                 `json:"phone,omitempty"`
	LoanPurpose     string                 `json:"loanPurpose,omitempty"`
	LoanAmount      float64                `json:"loanAmount,omitempty"`
	PropertyValue   float64                `json:"propertyValue,omitempty"`
	ApplicationData map[string]interface{} `json:"applicationData"`
	Status          string                 `json:"status"`
	CreatedAt       string                 `json:"createdAt"`
	UpdatedAt       string                 `json:"updatedAt"`
}

// Application lifecycle statuses written by the intake workers.
const (
	ApplicationStatusReceived   = "received"
	ApplicationStatusIncomplete = "incomplete"
	ApplicationStatusProcessing = "processing"
	ApplicationStatusQualified  = "qualified"
	ApplicationStatusDeclined   = "declined"
)

// CompletenessResult reports which essential fields an application is
// still missing.
type CompletenessResult struct {
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missingFields,omitempty"`
	FieldsPresent int      `json:"fieldsPresent"`
	FieldsTotal   int      `json:"fieldsTotal"`
}

// DTIAssessment is the underwriting view of a computed debt-to-income
// ratio pair against program limits.
type DTIAssessment struct {
	FrontEndDTI      float64 `json:"frontEndDti"`
	BackEndDTI       float64 `json:"backEndDti"`
	FrontEndLimit    float64 `json:"frontEndLimit"`
	BackEndLimit     float64 `json:"backEndLimit"`
	WithinFrontLimit bool    `json:"withinFrontLimit"`
	WithinBackLimit  bool    `json:"withinBackLimit"`
	LoanProgram      string  `json:"loanProgram"`
}
