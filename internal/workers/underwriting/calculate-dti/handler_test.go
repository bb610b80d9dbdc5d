// internal/workers/underwriting/calculate-dti/handler_test.go
package calculatedti

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-workers/internal/common/logger"
)

func TestHandler_Execute_DefaultLimits(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("mortgage:rules:dti:conventional").RedisNil()

	handler := NewHandler(LoadConfig(), redisClient, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		MonthlyIncome:  6000,
		HousingPayment: 1500,
		MonthlyDebts:   500,
	})

	require.NoError(t, err)
	assert.Equal(t, 25.0, output.FrontEndDTI)
	assert.Equal(t, 33.3, output.BackEndDTI)
	assert.Equal(t, 0.25, output.FrontEndRatio)
	assert.Equal(t, 0.333, output.BackEndRatio)
	assert.Equal(t, 28.0, output.FrontEndLimit)
	assert.Equal(t, 43.0, output.BackEndLimit)
	assert.True(t, output.WithinFrontLimit)
	assert.True(t, output.WithinBackLimit)
	assert.Equal(t, "conventional", output.LoanProgram)
	assert.Equal(t, "default", output.LimitsSource)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_CachedProgramLimits(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("mortgage:rules:dti:fha").
		SetVal(`{"frontEnd":31,"backEnd":50}`)

	handler := NewHandler(LoadConfig(), redisClient, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		MonthlyIncome:  6000,
		HousingPayment: 1800,
		MonthlyDebts:   1000,
		LoanProgram:    "FHA",
	})

	require.NoError(t, err)
	assert.Equal(t, 30.0, output.FrontEndDTI)
	assert.Equal(t, 46.7, output.BackEndDTI)
	assert.Equal(t, 31.0, output.FrontEndLimit)
	assert.Equal(t, 50.0, output.BackEndLimit)
	assert.True(t, output.WithinFrontLimit)
	assert.True(t, output.WithinBackLimit)
	assert.Equal(t, "fha", output.LoanProgram)
	assert.Equal(t, "cache", output.LimitsSource)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_OverLimits(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("mortgage:rules:dti:conventional").RedisNil()

	handler := NewHandler(LoadConfig(), redisClient, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		MonthlyIncome:  3000,
		HousingPayment: 2000,
		MonthlyDebts:   1500,
	})

	require.NoError(t, err)
	assert.Equal(t, 66.7, output.FrontEndDTI)
	assert.Equal(t, 116.7, output.BackEndDTI)
	assert.False(t, output.WithinFrontLimit)
	assert.False(t, output.WithinBackLimit)
}

func TestHandler_Execute_MalformedCacheEntryFallsBack(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("mortgage:rules:dti:conventional").SetVal("not json")

	handler := NewHandler(LoadConfig(), redisClient, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		MonthlyIncome:  6000,
		HousingPayment: 1500,
	})

	require.NoError(t, err)
	assert.Equal(t, 28.0, output.FrontEndLimit)
	assert.Equal(t, "default", output.LimitsSource)
}

func TestHandler_Execute_CacheErrorFallsBack(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("mortgage:rules:dti:conventional").SetErr(assert.AnError)

	handler := NewHandler(LoadConfig(), redisClient, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		MonthlyIncome:  6000,
		HousingPayment: 1500,
	})

	require.NoError(t, err)
	assert.Equal(t, "default", output.LimitsSource)
	assert.True(t, output.WithinFrontLimit)
}

func TestHandler_Execute_NonPositiveIncome(t *testing.T) {
	handler := NewHandler(LoadConfig(), nil, logger.NewTestLogger(t))

	tests := []float64{0, -1000}
	for _, income := range tests {
		output, err := handler.Execute(context.Background(), &Input{MonthlyIncome: income})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, ErrInvalidIncome)
	}
}
