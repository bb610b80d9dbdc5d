// test/e2e/pipeline_test.go
//
// Exercises the intake pipeline end to end: raw applicant text through
// parsing, completeness checking, persistence, DTI assessment, and the
// confirmation notification. External services are mocked so the suite
// runs anywhere.
package e2e

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-workers/internal/common/logger"
	"mortgage-workers/internal/parse"
	checkcompleteness "mortgage-workers/internal/workers/intake/check-completeness"
	parseapplication "mortgage-workers/internal/workers/intake/parse-application"
	receiveapplication "mortgage-workers/internal/workers/intake/receive-application"
	sendnotification "mortgage-workers/internal/workers/notification/send-notification"
	calculatedti "mortgage-workers/internal/workers/underwriting/calculate-dti"
)

const applicantText = "Hi, my name is Jane Johnson and I want to apply for a mortgage. " +
	"My annual income is 95000 and my credit score is 720. " +
	"I'm buying a $400,000 house with 15% down. " +
	"My email is jane.johnson@example.com and my phone number is 555-123-4567. " +
	"My SSN is 123-45-6789 and I was born on 1985-03-12."

type stubEmailSender struct {
	to      string
	subject string
	body    string
	calls   int
}

func (s *stubEmailSender) SendEmail(ctx context.Context, to, subject, body string) (string, error) {
	s.to, s.subject, s.body = to, subject, body
	s.calls++
	return "msg-1", nil
}

type stubSMSSender struct {
	calls int
}

func (s *stubSMSSender) SendSMS(ctx context.Context, phoneNumber, message string) (string, error) {
	s.calls++
	return "sms-1", nil
}

func TestIntakePipeline(t *testing.T) {
	ctx := context.Background()
	log := logger.NewTestLogger(t)

	// Stage 1: parse the free-form application text.
	parseHandler := parseapplication.NewHandler(parseapplication.LoadConfig(), log)
	parseOut := parseHandler.Execute(ctx, &parseapplication.Input{RawText: applicantText})
	record := parseOut.Parsed
	require.NotNil(t, record)

	require.NotNil(t, record.FirstName)
	assert.Equal(t, "Jane", *record.FirstName)
	require.NotNil(t, record.LastName)
	assert.Equal(t, "Johnson", *record.LastName)
	require.NotNil(t, record.Email)
	assert.Equal(t, "jane.johnson@example.com", *record.Email)
	require.NotNil(t, record.Phone)
	assert.Equal(t, "555-123-4567", *record.Phone)
	require.NotNil(t, record.SSN)
	require.NotNil(t, record.DateOfBirth)
	assert.Equal(t, "1985-03-12", *record.DateOfBirth)
	require.NotNil(t, record.MonthlyIncome)
	assert.InDelta(t, 7916.67, *record.MonthlyIncome, 0.01)
	require.NotNil(t, record.PropertyValue)
	assert.Equal(t, 400000.0, *record.PropertyValue)
	require.NotNil(t, record.LoanAmount)
	assert.InDelta(t, 340000.0, *record.LoanAmount, 0.01)
	require.NotNil(t, record.LoanPurpose)
	assert.Equal(t, "purchase", *record.LoanPurpose)
	assert.Equal(t, "apply_mortgage", record.Intent)

	// The property address arrives in a later turn of the intake
	// conversation; merge it in before the completeness check.
	address := "123 Oak Street, Springfield, IL 62704"
	record.Address = &address

	// Stage 2: completeness check.
	completenessHandler := checkcompleteness.NewHandler(checkcompleteness.LoadConfig(), log)
	completenessOut, err := completenessHandler.Execute(ctx, &checkcompleteness.Input{Parsed: record})
	require.NoError(t, err)
	assert.True(t, completenessOut.Complete, "missing: %v", completenessOut.MissingFields)
	assert.Equal(t, 100.0, completenessOut.CompletionPercentage)
	assert.Empty(t, completenessOut.MissingFields)
	assert.Equal(t, completenessOut.FieldsTotal, completenessOut.FieldsPresent)

	// Stage 3: persist the application record.
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT EXISTS").
		WithArgs("jane.johnson@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	dbMock.ExpectExec("INSERT INTO applications").
		WillReturnResult(sqlmock.NewResult(1, 1))

	receiveHandler := receiveapplication.NewHandler(receiveapplication.LoadConfig(), db, log)
	receiveOut, err := receiveHandler.Execute(ctx, &receiveapplication.Input{Parsed: record})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receiveOut.ApplicationID, "APP_"))
	assert.True(t, strings.HasSuffix(receiveOut.ApplicationID, "SON"))
	assert.Equal(t, 400000.0, receiveOut.PropertyValue)
	assert.Equal(t, "received", receiveOut.ApplicationStatus)
	require.NoError(t, dbMock.ExpectationsWereMet())

	// Stage 4: DTI assessment. No cached program limits, so the
	// conventional defaults apply.
	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("mortgage:rules:dti:conventional").RedisNil()

	dtiHandler := calculatedti.NewHandler(calculatedti.LoadConfig(), redisClient, log)
	dtiOut, err := dtiHandler.Execute(ctx, &calculatedti.Input{
		MonthlyIncome:  *record.MonthlyIncome,
		HousingPayment: 2200,
		MonthlyDebts:   600,
	})
	require.NoError(t, err)
	assert.InDelta(t, 27.8, dtiOut.FrontEndDTI, 0.01)
	assert.InDelta(t, 35.4, dtiOut.BackEndDTI, 0.01)
	assert.True(t, dtiOut.WithinFrontLimit)
	assert.True(t, dtiOut.WithinBackLimit)
	assert.Equal(t, "default", dtiOut.LimitsSource)
	require.NoError(t, redisMock.ExpectationsWereMet())

	// Stage 5: confirmation email. Normal priority, so no SMS.
	emailSender := &stubEmailSender{}
	smsSender := &stubSMSSender{}
	notifyHandler := sendnotification.NewHandlerWithClients(
		sendnotification.LoadConfig(), emailSender, smsSender, log)
	notifyOut, err := notifyHandler.Execute(ctx, &sendnotification.Input{
		ApplicationID:    receiveOut.ApplicationID,
		RecipientEmail:   *record.Email,
		RecipientPhone:   *record.Phone,
		NotificationType: sendnotification.TypeApplicationReceived,
	})
	require.NoError(t, err)
	assert.Equal(t, "sent", notifyOut.Status)
	assert.Equal(t, 1, emailSender.calls)
	assert.Equal(t, "jane.johnson@example.com", emailSender.to)
	assert.Contains(t, emailSender.subject, receiveOut.ApplicationID)
	assert.Zero(t, smsSender.calls)
}

func TestIntakePipeline_IncompleteApplication(t *testing.T) {
	ctx := context.Background()
	log := logger.NewTestLogger(t)

	parseHandler := parseapplication.NewHandler(parseapplication.LoadConfig(), log)
	parseOut := parseHandler.Execute(ctx, &parseapplication.Input{
		RawText: "Hi, my name is Bob Miller and I want to apply for a mortgage.",
	})
	require.NotNil(t, parseOut.Parsed)
	assert.Equal(t, "apply_mortgage", parseOut.Parsed.Intent)

	completenessHandler := checkcompleteness.NewHandler(checkcompleteness.LoadConfig(), log)
	completenessOut, err := completenessHandler.Execute(ctx, &checkcompleteness.Input{Parsed: parseOut.Parsed})
	require.NoError(t, err)
	assert.False(t, completenessOut.Complete)
	assert.Contains(t, completenessOut.MissingFields, "ssn")
	assert.Contains(t, completenessOut.MissingFields, "monthly_income")
	assert.Equal(t, "incomplete", completenessOut.Status)
}

// The duplicate guard rejects a second open application for the same email
// before any insert happens.
func TestIntakePipeline_DuplicateApplication(t *testing.T) {
	ctx := context.Background()
	log := logger.NewTestLogger(t)

	email := "jane.johnson@example.com"
	lastName := "Johnson"
	loanAmount := 340000.0
	record := &parse.Record{Email: &email, LastName: &lastName, LoanAmount: &loanAmount}

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT EXISTS").
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	receiveHandler := receiveapplication.NewHandler(receiveapplication.LoadConfig(), db, log)
	_, err = receiveHandler.Execute(ctx, &receiveapplication.Input{Parsed: record})
	require.Error(t, err)
	assert.ErrorIs(t, err, receiveapplication.ErrDuplicateApplication)
	require.NoError(t, dbMock.ExpectationsWereMet())
}
