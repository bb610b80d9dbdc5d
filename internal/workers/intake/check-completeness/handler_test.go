// internal/workers/intake/check-completeness/handler_test.go
package checkcompleteness

import (
	"context"
	"testing"

	"mortgage-workers/internal/common/logger"
	"mortgage-workers/internal/models"
	"mortgage-workers/internal/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string   { return &s }
func f64p(v float64) *float64 { return &v }

func completeRecord() *parse.Record {
	return &parse.Record{
		FirstName:     strp("Sarah"),
		LastName:      strp("Johnson"),
		DateOfBirth:   strp("1985-03-15"),
		SSN:           strp("123-45-6789"),
		Phone:         strp("555-123-4567"),
		Email:         strp("sarah@example.com"),
		LoanPurpose:   strp("purchase"),
		LoanAmount:    f64p(340000),
		Address:       strp("123 Main Street"),
		MonthlyIncome: f64p(7900),
	}
}

func TestHandler_Execute_CompleteApplication(t *testing.T) {
	handler := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{Parsed: completeRecord()})

	require.NoError(t, err)
	assert.True(t, output.Complete)
	assert.Empty(t, output.MissingFields)
	assert.Equal(t, 10, output.FieldsPresent)
	assert.Equal(t, 10, output.FieldsTotal)
	assert.Equal(t, 100.0, output.CompletionPercentage)
	assert.Equal(t, models.ApplicationStatusReceived, output.Status)
}

func TestHandler_Execute_MissingFields(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(r *parse.Record)
		expectedMissing []string
	}{
		{
			name:            "missing ssn and dob",
			mutate:          func(r *parse.Record) { r.SSN = nil; r.DateOfBirth = nil },
			expectedMissing: []string{FieldDateOfBirth, FieldSSN},
		},
		{
			name:            "zero loan amount counts as missing",
			mutate:          func(r *parse.Record) { r.LoanAmount = f64p(0) },
			expectedMissing: []string{FieldLoanAmount},
		},
		{
			name:            "zero income counts as missing",
			mutate:          func(r *parse.Record) { r.MonthlyIncome = f64p(0) },
			expectedMissing: []string{FieldMonthlyIncome},
		},
		{
			name:            "missing contact details",
			mutate:          func(r *parse.Record) { r.Phone = nil; r.Email = nil },
			expectedMissing: []string{FieldPhone, FieldEmail},
		},
	}

	handler := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := completeRecord()
			tt.mutate(record)

			output, err := handler.Execute(context.Background(), &Input{Parsed: record})

			require.NoError(t, err)
			assert.False(t, output.Complete)
			assert.Equal(t, tt.expectedMissing, output.MissingFields)
			assert.Equal(t, 10-len(tt.expectedMissing), output.FieldsPresent)
			assert.Equal(t, models.ApplicationStatusIncomplete, output.Status)
		})
	}
}

func TestHandler_Execute_EmptyRecord(t *testing.T) {
	handler := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{Parsed: &parse.Record{}})

	require.NoError(t, err)
	assert.False(t, output.Complete)
	assert.Len(t, output.MissingFields, 10)
	assert.Equal(t, 0, output.FieldsPresent)
	assert.Equal(t, 0.0, output.CompletionPercentage)
}

func TestHandler_Execute_NilRecord(t *testing.T) {
	handler := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{})

	assert.Nil(t, output)
	assert.Error(t, err)
}
