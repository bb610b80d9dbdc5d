package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIncome(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		found bool
	}{
		{name: "annual label divided by twelve", input: "my annual income is 96000", want: 8000, found: true},
		{name: "per year marker", input: "I make $95,000 per year", want: 7916.67, found: true},
		{name: "annually marker", input: "salary of 120000 annually", want: 10000, found: true},
		{name: "monthly label taken as is", input: "monthly income: 4000", want: 4000, found: true},
		{name: "slash month", input: "income of $8,500/month", want: 8500, found: true},
		{name: "casual thousands shorthand", input: "I make about 5k per month", want: 5000, found: true},
		{name: "fractional shorthand", input: "I make 8.5k a month", want: 8500, found: true},
		{name: "unmarked large amount assumed annual", input: "income: 95000", want: 7916.67, found: true},
		{name: "unmarked small amount assumed monthly", input: "my income is 4000", want: 4000, found: true},
		{name: "earn phrasing", input: "I earn about 6000", want: 6000, found: true},
		{name: "no income stated", input: "I have a good job", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeIncome(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.want, got, 0.01)
			}
		})
	}
}

func TestNormalizeIncomeThresholdConfigurable(t *testing.T) {
	p := New(Config{AnnualIncomeThreshold: 3000})

	got, ok := p.NormalizeIncome("income: 4000")
	assert.True(t, ok)
	assert.InDelta(t, 333.33, got, 0.01)

	got, ok = p.NormalizeIncome("income: 2500")
	assert.True(t, ok)
	assert.InDelta(t, 2500, got, 0.01)
}
