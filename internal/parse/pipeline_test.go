package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullApplication(t *testing.T) {
	rec := Parse("Hi, my name is John Smith, credit score 720, monthly income $8,500, " +
		"looking to buy a $400,000 house with 15% down. I work at TechCorp. I owe $500 a month.")

	require.NotNil(t, rec.FirstName)
	assert.Equal(t, "John", *rec.FirstName)
	require.NotNil(t, rec.LastName)
	assert.Equal(t, "Smith", *rec.LastName)

	require.NotNil(t, rec.CreditScore)
	assert.Equal(t, 720, *rec.CreditScore)

	require.NotNil(t, rec.MonthlyIncome)
	assert.InDelta(t, 8500, *rec.MonthlyIncome, 0.01)
	require.NotNil(t, rec.AnnualIncome)
	assert.InDelta(t, 102000, *rec.AnnualIncome, 0.01)

	require.NotNil(t, rec.PropertyValue)
	assert.InDelta(t, 400000, *rec.PropertyValue, 0.01)
	require.NotNil(t, rec.DownPaymentPercent)
	assert.InDelta(t, 0.15, *rec.DownPaymentPercent, 0.0001)
	require.NotNil(t, rec.DownPayment)
	assert.InDelta(t, 60000, *rec.DownPayment, 0.01)
	require.NotNil(t, rec.LoanAmount)
	assert.InDelta(t, 340000, *rec.LoanAmount, 0.01)

	require.NotNil(t, rec.MonthlyDebts)
	assert.InDelta(t, 500, *rec.MonthlyDebts, 0.01)

	require.NotNil(t, rec.Employer)
	assert.Equal(t, "TechCorp", *rec.Employer)

	require.NotNil(t, rec.LoanPurpose)
	assert.Equal(t, LoanPurposePurchase, *rec.LoanPurpose)

	assert.NotEmpty(t, rec.OriginalInput)
	assert.NotEmpty(t, rec.ParsedTimestamp)
}

func TestParseValueOnlyUsesDefaultAssumption(t *testing.T) {
	rec := Parse("looking at a 350000 home")

	require.NotNil(t, rec.PropertyValue)
	assert.InDelta(t, 350000, *rec.PropertyValue, 0.01)
	require.NotNil(t, rec.DownPaymentPercent)
	assert.InDelta(t, 0.20, *rec.DownPaymentPercent, 0.0001)
	require.NotNil(t, rec.DownPayment)
	assert.InDelta(t, 70000, *rec.DownPayment, 0.01)
	require.NotNil(t, rec.LoanAmount)
	assert.InDelta(t, 280000, *rec.LoanAmount, 0.01)
}

func TestParseDerivedFiguresStayConsistent(t *testing.T) {
	// The stated $50,000 conflicts with 10% of the price; the derived
	// figures win so value, loan, and down payment agree.
	rec := Parse("Price: $400,000 with 10% down, I have a down payment of $50,000 saved")

	require.NotNil(t, rec.PropertyValue)
	require.NotNil(t, rec.DownPayment)
	require.NotNil(t, rec.LoanAmount)
	assert.InDelta(t, 400000, *rec.PropertyValue, 0.01)
	assert.InDelta(t, 40000, *rec.DownPayment, 0.01)
	assert.InDelta(t, 360000, *rec.LoanAmount, 0.01)
}

func TestParseNeverFails(t *testing.T) {
	for _, input := range []string{"", "hello", "!!!???", "   \n\t  "} {
		rec := Parse(input)
		require.NotNil(t, rec)
		assert.Equal(t, IntentGeneralInquiry, rec.Intent)
		assert.InDelta(t, ConfidenceFallback, rec.Confidence, 0.0001)
		assert.Nil(t, rec.FirstName)
		assert.Nil(t, rec.MonthlyIncome)
		assert.Nil(t, rec.PropertyValue)
		assert.Equal(t, input, rec.OriginalInput)
	}
}

func TestParseTruncatesLongInputButKeepsOriginal(t *testing.T) {
	p := New(Config{MaxInputLength: 10})
	input := "my name is John Smith"

	rec := p.Parse(input)
	assert.Nil(t, rec.FirstName)
	assert.Equal(t, input, rec.OriginalInput)
}

func TestParseDefaultInputCapAlwaysApplies(t *testing.T) {
	p := New(Config{})
	input := strings.Repeat("a ", 10000) + "credit score is 720"

	rec := p.Parse(input)
	assert.Nil(t, rec.CreditScore)
}

func TestParseStructuredFillsGaps(t *testing.T) {
	rec := Parse("Application: APP_20240115_143052_SMI, Loan: $250,000, Employment: full_time, Occupancy: primary residence")

	require.NotNil(t, rec.ApplicationID)
	assert.Equal(t, "APP_20240115_143052_SMI", *rec.ApplicationID)
	require.NotNil(t, rec.LoanAmount)
	assert.InDelta(t, 250000, *rec.LoanAmount, 0.01)
	require.NotNil(t, rec.EmploymentType)
	assert.Equal(t, "full_time", *rec.EmploymentType)
	require.NotNil(t, rec.OccupancyType)
	assert.Equal(t, "primary_residence", *rec.OccupancyType)
}

func TestParseEmployerAlwaysAttempted(t *testing.T) {
	rec := Parse("Employment: full_time, I work at google")

	require.NotNil(t, rec.EmploymentType)
	assert.Equal(t, "full_time", *rec.EmploymentType)
	require.NotNil(t, rec.Employer)
	assert.Equal(t, "Google", *rec.Employer)
}

func TestParseIsDeterministic(t *testing.T) {
	input := "I'm Jane Doe, income: 95000, first time buyer, credit around 700"

	a := Parse(input)
	b := Parse(input)
	a.ParsedTimestamp = ""
	b.ParsedTimestamp = ""
	assert.Equal(t, a, b)
}
