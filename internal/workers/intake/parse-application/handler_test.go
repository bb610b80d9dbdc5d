// internal/workers/intake/parse-application/handler_test.go
package parseapplication

import (
	"context"
	"testing"

	"mortgage-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Execute_Success(t *testing.T) {
	handler := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	input := &Input{RawText: "Hi, my name is John Smith and I want to apply for a mortgage. " +
		"My annual income is 95000 and my credit score is 720. " +
		"I'm looking at a $400,000 house with 15% down."}

	output := handler.Execute(context.Background(), input)

	require.NotNil(t, output)
	require.NotNil(t, output.Parsed)

	parsed := output.Parsed
	require.NotNil(t, parsed.FirstName)
	assert.Equal(t, "John", *parsed.FirstName)
	require.NotNil(t, parsed.LastName)
	assert.Equal(t, "Smith", *parsed.LastName)
	require.NotNil(t, parsed.CreditScore)
	assert.Equal(t, 720, *parsed.CreditScore)
	require.NotNil(t, parsed.MonthlyIncome)
	assert.InDelta(t, 7916.67, *parsed.MonthlyIncome, 0.01)
	require.NotNil(t, parsed.PropertyValue)
	assert.Equal(t, 400000.0, *parsed.PropertyValue)
	assert.Equal(t, "apply_mortgage", parsed.Intent)
	assert.Equal(t, 0.9, parsed.Confidence)
}

func TestHandler_Execute_EmptyInputYieldsMetadataOnlyRecord(t *testing.T) {
	handler := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	tests := []struct {
		name    string
		rawText string
	}{
		{name: "empty string", rawText: ""},
		{name: "whitespace only", rawText: "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := handler.Execute(context.Background(), &Input{RawText: tt.rawText})

			require.NotNil(t, output)
			require.NotNil(t, output.Parsed)
			assert.Equal(t, "general_inquiry", output.Parsed.Intent)
			assert.Equal(t, 0.5, output.Parsed.Confidence)
			assert.Nil(t, output.Parsed.FirstName)
			assert.Nil(t, output.Parsed.MonthlyIncome)
		})
	}
}

func TestHandler_Execute_UnstructuredInputStillCompletes(t *testing.T) {
	handler := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output := handler.Execute(context.Background(), &Input{RawText: "hello there"})

	require.NotNil(t, output.Parsed)
	assert.Equal(t, "general_inquiry", output.Parsed.Intent)
	assert.Equal(t, 0.5, output.Parsed.Confidence)
	assert.Nil(t, output.Parsed.FirstName)
}
