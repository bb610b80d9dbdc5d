package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStructured(t *testing.T) {
	t.Run("labeled fragment", func(t *testing.T) {
		s := ExtractStructured("Application: APP_20240115_143052_SMI, Loan: $250,000, Employment: full_time, Status: approved")
		assert.Equal(t, "APP_20240115_143052_SMI", s.ApplicationID)
		require.NotNil(t, s.LoanAmount)
		assert.InDelta(t, 250000, *s.LoanAmount, 0.01)
		assert.Equal(t, "full_time", s.EmploymentType)
		assert.Equal(t, "approved", s.Status)
	})

	t.Run("occupancy and type labels", func(t *testing.T) {
		s := ExtractStructured("Occupancy: primary residence, Type: townhouse")
		assert.Equal(t, "primary_residence", s.OccupancyType)
		assert.Equal(t, "townhouse", s.PropertyType)
	})

	t.Run("program triggers", func(t *testing.T) {
		s := ExtractStructured("first time buyer, veteran, looking at a rural property with a co-borrower")
		assert.True(t, s.FirstTimeBuyer)
		assert.True(t, s.MilitaryService)
		assert.True(t, s.RuralProperty)
		assert.True(t, s.CoBorrower)
	})

	t.Run("self employment phrase", func(t *testing.T) {
		s := ExtractStructured("I am self employed and need a loan")
		assert.Equal(t, "self_employed", s.EmploymentType)
	})

	t.Run("label beats phrase detection", func(t *testing.T) {
		s := ExtractStructured("Employment: full_time, I used to be self employed")
		assert.Equal(t, "full_time", s.EmploymentType)
	})

	t.Run("nothing structured", func(t *testing.T) {
		s := ExtractStructured("hello, I have a question")
		assert.Equal(t, StructuredFields{}, s)
	})
}
