package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateAgainstSchema validates a document against a JSON schema. The
// schema is given as raw JSON, typically loaded from the activity registry.
// gojsonschema panics on some malformed schemas instead of returning an
// error; the recover turns those into a plain error.
func ValidateAgainstSchema(document map[string]interface{}, schemaJSON string) (vr *ValidationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			vr, err = nil, fmt.Errorf("schema validation failed to run: %v", r)
		}
	}()

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return &ValidationResult{Valid: true}, nil
	}

	errors := make([]ValidationError, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		errors = append(errors, ValidationError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
			Code:    strings.ToUpper(resultErr.Type()),
		})
	}

	return &ValidationResult{Valid: false, Errors: errors}, nil
}

// CompileSchema checks that a JSON schema is itself well formed. Used at
// startup so a broken registry schema fails fast instead of at job time.
// The recover guards against gojsonschema panicking on schemas whose
// keywords carry the wrong JSON type.
func CompileSchema(schemaJSON string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid JSON schema: %v", r)
		}
	}()

	if _, compileErr := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON)); compileErr != nil {
		return fmt.Errorf("invalid JSON schema: %w", compileErr)
	}
	return nil
}

// ValidateActivityNaming validates activity ID follows naming convention
func ValidateActivityNaming(activityID string) error {
	namingPattern := regexp.MustCompile(`^[a-z]+\.[a-z-]+\.[a-z-]+$`)
	if !namingPattern.MatchString(activityID) {
		return fmt.Errorf("activity ID must follow format: domain.subdomain.action (e.g., intake.application.parse)")
	}
	return nil
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// GetErrorsForField returns errors for a specific field
func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") || strings.HasPrefix(err.Field, field+"[") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-\(\)]{10,}$`)
	ssnPattern   = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateEmail validates email format
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone validates basic phone number format
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateSSN validates the dashed nine-digit SSN format
func ValidateSSN(ssn string) bool {
	return ssnPattern.MatchString(ssn)
}

// ValidateISODate validates a YYYY-MM-DD date string
func ValidateISODate(date string) bool {
	return datePattern.MatchString(date)
}
