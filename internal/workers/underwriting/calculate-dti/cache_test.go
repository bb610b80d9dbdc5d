// internal/workers/underwriting/calculate-dti/cache_test.go
package calculatedti

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-workers/internal/common/logger"
)

// Runs the limit lookup against a real Redis protocol implementation
// rather than call-level mocks.
func TestHandler_Execute_MiniredisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer redisClient.Close()

	require.NoError(t, mr.Set("mortgage:rules:dti:va", `{"frontEnd":41,"backEnd":41}`))

	handler := NewHandler(LoadConfig(), redisClient, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		MonthlyIncome:  5000,
		HousingPayment: 2000,
		MonthlyDebts:   200,
		LoanProgram:    "VA",
	})

	require.NoError(t, err)
	assert.Equal(t, 40.0, output.FrontEndDTI)
	assert.Equal(t, 44.0, output.BackEndDTI)
	assert.Equal(t, 41.0, output.FrontEndLimit)
	assert.Equal(t, 41.0, output.BackEndLimit)
	assert.True(t, output.WithinFrontLimit)
	assert.False(t, output.WithinBackLimit)
	assert.Equal(t, "cache", output.LimitsSource)

	// A program with no cached entry still resolves with the defaults.
	output, err = handler.Execute(context.Background(), &Input{
		MonthlyIncome:  5000,
		HousingPayment: 1000,
		LoanProgram:    "jumbo",
	})
	require.NoError(t, err)
	assert.Equal(t, "default", output.LimitsSource)
	assert.Equal(t, 28.0, output.FrontEndLimit)
}
