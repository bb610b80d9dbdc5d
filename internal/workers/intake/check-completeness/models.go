// internal/workers/intake/check-completeness/models.go
package checkcompleteness

import "mortgage-workers/internal/parse"

type Input struct {
	Parsed *parse.Record `json:"parsed"`
}

type Output struct {
	Complete             bool     `json:"complete"`
	CompletionPercentage float64  `json:"completionPercentage"`
	MissingFields        []string `json:"missingFields"`
	FieldsPresent        int      `json:"fieldsPresent"`
	FieldsTotal          int      `json:"fieldsTotal"`
	Status               string   `json:"applicationStatus"`
}

// Essential field names reported back to the process for follow-up
// document requests.
const (
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldDateOfBirth     = "date_of_birth"
	FieldSSN             = "ssn"
	FieldPhone           = "phone"
	FieldEmail           = "email"
	FieldLoanPurpose     = "loan_purpose"
	FieldLoanAmount      = "loan_amount"
	FieldPropertyAddress = "property_address"
	FieldMonthlyIncome   = "monthly_income"
)
