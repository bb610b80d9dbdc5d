// internal/workers/intake/receive-application/handler_test.go
package receiveapplication

import (
	"context"
	"fmt"
	"testing"
	"time"

	bpmnerrors "mortgage-workers/internal/common/errors"
	"mortgage-workers/internal/common/logger"
	"mortgage-workers/internal/parse"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string   { return &s }
func f64p(v float64) *float64 { return &v }

func createTestRecord() *parse.Record {
	return &parse.Record{
		FirstName:     strp("Sarah"),
		LastName:      strp("Johnson"),
		FullName:      strp("Sarah Johnson"),
		Email:         strp("sarah@example.com"),
		Phone:         strp("555-123-4567"),
		SSN:           strp("123-45-6789"),
		DateOfBirth:   strp("1985-03-15"),
		LoanPurpose:   strp("purchase"),
		LoanAmount:    f64p(340000),
		PropertyValue: f64p(400000),
		MonthlyIncome: f64p(7900),
	}
}

func TestHandler_Execute_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("sarah@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectExec(`INSERT INTO applications`).
		WithArgs(
			sqlmock.AnyArg(), // application ID
			"Sarah Johnson",
			"sarah@example.com",
			"555-123-4567",
			"purchase",
			340000.0,
			400000.0,
			sqlmock.AnyArg(), // JSON payload
			"received",
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	handler := NewHandler(LoadConfig(), db, logger.NewTestLogger(t))
	handler.now = func() time.Time {
		return time.Date(2024, 1, 15, 14, 30, 52, 0, time.UTC)
	}

	output, err := handler.Execute(context.Background(), &Input{Parsed: createTestRecord()})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "APP_20240115_143052_SON", output.ApplicationID)
	assert.Equal(t, "received", output.ApplicationStatus)
	assert.Equal(t, 400000.0, output.PropertyValue)
	assert.NotEmpty(t, output.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_DerivesPropertyValueFromLoanAmount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("sarah@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectExec(`INSERT INTO applications`).
		WithArgs(
			sqlmock.AnyArg(),
			"Sarah Johnson",
			"sarah@example.com",
			"555-123-4567",
			"purchase",
			340000.0,
			sqlmock.AnyArg(), // derived property value
			sqlmock.AnyArg(),
			"received",
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	record := createTestRecord()
	record.PropertyValue = nil

	handler := NewHandler(LoadConfig(), db, logger.NewTestLogger(t))
	output, err := handler.Execute(context.Background(), &Input{Parsed: record})

	require.NoError(t, err)
	assert.InDelta(t, 425000.0, output.PropertyValue, 0.01)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_DuplicateApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("sarah@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	handler := NewHandler(LoadConfig(), db, logger.NewTestLogger(t))
	output, err := handler.Execute(context.Background(), &Input{Parsed: createTestRecord()})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *parse.Record)
	}{
		{name: "bad email", mutate: func(r *parse.Record) { r.Email = strp("not-an-email") }},
		{name: "bad phone", mutate: func(r *parse.Record) { r.Phone = strp("12") }},
		{name: "bad ssn", mutate: func(r *parse.Record) { r.SSN = strp("123456789") }},
		{name: "bad dob", mutate: func(r *parse.Record) { r.DateOfBirth = strp("03/15/1985") }},
	}

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	handler := NewHandler(LoadConfig(), db, logger.NewTestLogger(t))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := createTestRecord()
			tt.mutate(record)

			output, err := handler.Execute(context.Background(), &Input{Parsed: record})

			assert.Nil(t, output)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestHandler_Execute_InsertFailureIsRetryable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("sarah@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectExec(`INSERT INTO applications`).
		WillReturnError(assert.AnError)

	handler := NewHandler(LoadConfig(), db, logger.NewTestLogger(t))
	output, err := handler.Execute(context.Background(), &Input{Parsed: createTestRecord()})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrDatabaseInsertFailed)
}

func TestHandler_Execute_DuplicateCheckFailureIsQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("sarah@example.com").
		WillReturnError(assert.AnError)

	handler := NewHandler(LoadConfig(), db, logger.NewTestLogger(t))
	output, err := handler.Execute(context.Background(), &Input{Parsed: createTestRecord()})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrDuplicateCheckFailed)
}

func TestToStandardError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		code      bpmnerrors.ErrorCode
		retryable bool
	}{
		{
			name:      "duplicate application",
			err:       fmt.Errorf("%w: open application already exists", ErrDuplicateApplication),
			code:      bpmnerrors.ErrCodeDuplicateApplication,
			retryable: false,
		},
		{
			name:      "duplicate check timeout",
			err:       fmt.Errorf("%w: duplicate check timed out", ErrDuplicateCheckTimeout),
			code:      bpmnerrors.ErrCodeQueryTimeout,
			retryable: true,
		},
		{
			name:      "duplicate check failure",
			err:       fmt.Errorf("%w: connection reset", ErrDuplicateCheckFailed),
			code:      bpmnerrors.ErrCodeQueryExecutionFailed,
			retryable: true,
		},
		{
			name:      "insert failure",
			err:       fmt.Errorf("%w: insert failed", ErrDatabaseInsertFailed),
			code:      bpmnerrors.ErrCodeDatabaseInsertFailed,
			retryable: true,
		},
		{
			name:      "validation failure",
			err:       fmt.Errorf("%w: invalid email format", ErrValidationFailed),
			code:      bpmnerrors.ErrCodeApplicationValidationFailed,
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdErr := toStandardError(tt.err)
			assert.Equal(t, tt.code, stdErr.Code)
			assert.Equal(t, tt.retryable, stdErr.Retryable)
		})
	}
}

func TestHandler_Execute_NilRecord(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	handler := NewHandler(LoadConfig(), db, logger.NewTestLogger(t))
	output, err := handler.Execute(context.Background(), &Input{})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrValidationFailed)
}
