package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmployer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{name: "interior casing preserved", input: "I work at TechCorp as a software engineer", want: "TechCorp", found: true},
		{name: "lowercase name title cased", input: "I work at google", want: "Google", found: true},
		{name: "multi word employer", input: "employed by First National Bank", want: "First National Bank", found: true},
		{name: "occupation at employer", input: "I'm a nurse at Memorial Hospital", want: "Memorial Hospital", found: true},
		{name: "employer label", input: "Employer: Acme Logistics", want: "Acme Logistics", found: true},
		{name: "generic noun rejected", input: "I work at home", found: false},
		{name: "no employer stated", input: "I need a loan", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractEmployer(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractEmployerWordCap(t *testing.T) {
	got, ok := ExtractEmployer("employer: Acme Logistics Group Inc Extra")
	assert.True(t, ok)
	assert.Equal(t, "Acme Logistics Group Inc", got)

	p := New(Config{EmployerMaxWords: 2})
	got, ok = p.ExtractEmployer("employer: Acme Logistics Group Inc")
	assert.True(t, ok)
	assert.Equal(t, "Acme Logistics", got)
}

func TestExtractApplicationID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{name: "canonical id uppercased", input: "my application id: app_20240115_143052_smi", want: "APP_20240115_143052_SMI", found: true},
		{name: "loose app prefix", input: "reference APP_TEST_123 please", want: "APP_TEST_123", found: true},
		{name: "labeled foreign id", input: "application number: 56789", want: "56789", found: true},
		{name: "no id present", input: "I applied last week", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractApplicationID(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewApplicationID(t *testing.T) {
	ts := time.Date(2024, 1, 15, 14, 30, 52, 0, time.UTC)

	assert.Equal(t, "APP_20240115_143052_ITH", NewApplicationID(ts, "Smith"))
	assert.Equal(t, "APP_20240115_143052_LI", NewApplicationID(ts, "Li"))
	assert.Equal(t, "APP_20240115_143052_XXX", NewApplicationID(ts, ""))
}
