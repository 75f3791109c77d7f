package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScope/internal/model"
)

func makeBars(closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func TestComputeIndicators_AlignedLengths(t *testing.T) {
	closes := make([]float64, 250)
	for i := range closes {
		closes[i] = 100 + float64(i%7)
	}
	set, err := ComputeIndicators(makeBars(closes))
	require.NoError(t, err)

	for name, series := range map[string][]*float64{
		"sma50": set.SMA50, "sma200": set.SMA200, "rsi": set.RSI,
		"macd": set.MACD, "signal": set.Signal, "stochK": set.StochK, "stochD": set.StochD,
	} {
		assert.Len(t, series, 250, name)
	}

	// Spot-check the leading undefined regions.
	assert.Nil(t, set.SMA50[48])
	assert.NotNil(t, set.SMA50[49])
	assert.Nil(t, set.SMA200[198])
	assert.NotNil(t, set.SMA200[199])
	assert.Nil(t, set.RSI[13])
	assert.NotNil(t, set.RSI[14])
}

func TestCalculateMovement(t *testing.T) {
	closes := make([]float64, 10)
	for i := range closes {
		closes[i] = 100 + float64(i)*5 // 100 -> 145
	}
	mv, err := CalculateMovement(makeBars(closes))
	require.NoError(t, err)
	assert.InDelta(t, 100.0, mv.StartPrice, 1e-12)
	assert.InDelta(t, 145.0, mv.EndPrice, 1e-12)
	assert.InDelta(t, 45.0, mv.ChangePct, 1e-12)
	assert.True(t, mv.SignificantGrowth())
}

func TestCalculateMovement_GrowthBoundary(t *testing.T) {
	mv, err := CalculateMovement(makeBars([]float64{100, 120}))
	require.NoError(t, err)
	assert.InDelta(t, 20.0, mv.ChangePct, 1e-12)
	assert.False(t, mv.SignificantGrowth(), "exactly +20%% is not significant")
}

func TestCalculateMovement_Empty(t *testing.T) {
	_, err := CalculateMovement(nil)
	assert.Error(t, err)
}
