package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantSeries(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestCalculateRSI_LeadingUndefinedRegion(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	out, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	require.Len(t, out, 30)

	// The delta at index 0 is undefined, so the first defined RSI needs
	// period changes and sits at index 14.
	for i := 0; i < 14; i++ {
		assert.Nil(t, out[i], "index %d", i)
	}
	require.NotNil(t, out[14])
}

func TestCalculateRSI_FlatSeriesIs50(t *testing.T) {
	out, err := CalculateRSI(constantSeries(250, 40), 14)
	require.NoError(t, err)
	for i := 14; i < len(out); i++ {
		require.NotNil(t, out[i], "index %d", i)
		assert.Equal(t, 50.0, *out[i], "index %d", i)
	}
}

func TestCalculateRSI_AllGainsClampTo100(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)*2
	}
	out, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	require.NotNil(t, out[19])
	assert.Equal(t, 100.0, *out[19])
}

func TestCalculateRSI_AllLossesIsZero(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 200 - float64(i)*3
	}
	out, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	require.NotNil(t, out[19])
	assert.InDelta(t, 0.0, *out[19], 1e-12)
}

func TestCalculateRSI_AlwaysInBounds(t *testing.T) {
	closes := []float64{
		100, 103, 101, 104, 99, 98, 105, 107, 102, 101,
		108, 110, 109, 111, 106, 104, 112, 115, 113, 110,
		109, 114, 116, 112, 118, 117, 120, 119, 121, 118,
	}
	out, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	for i, v := range out {
		if v == nil {
			continue
		}
		assert.GreaterOrEqual(t, *v, 0.0, "index %d", i)
		assert.LessOrEqual(t, *v, 100.0, "index %d", i)
	}
}

func TestCalculateRSI_ExactRollingMean(t *testing.T) {
	// One loss of 2 and thirteen gains of 1 inside the window:
	// RS = (13/14)/(2/14), RSI = 100 - 100/(1+6.5).
	closes := make([]float64, 15)
	closes[0] = 100
	for i := 1; i < 15; i++ {
		closes[i] = closes[i-1] + 1
	}
	closes[7] = closes[6] - 2
	closes[8] = closes[7] + 1
	// Rebuild the tail so every other step is +1.
	for i := 9; i < 15; i++ {
		closes[i] = closes[i-1] + 1
	}

	out, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	require.NotNil(t, out[14])

	sumGain, sumLoss := 0.0, 0.0
	for i := 1; i <= 14; i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			sumGain += d
		} else {
			sumLoss -= d
		}
	}
	rs := (sumGain / 14) / (sumLoss / 14)
	want := 100 - 100/(1+rs)
	assert.InDelta(t, want, *out[14], 1e-12)
}

func TestCalculateRSI_InvalidPeriod(t *testing.T) {
	_, err := CalculateRSI([]float64{1, 2, 3}, -1)
	assert.Error(t, err)
}
