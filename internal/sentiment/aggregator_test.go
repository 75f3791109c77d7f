package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScope/internal/model"
)

func TestAggregate_NoHeadlines(t *testing.T) {
	res := Aggregate(nil)
	assert.Nil(t, res.Average, "no headlines must not look like a zero average")

	res = Aggregate([]float64{})
	assert.Nil(t, res.Average)
}

func TestAggregate_AverageAndLabel(t *testing.T) {
	res := Aggregate([]float64{0.2, 0.3, -0.1})
	require.NotNil(t, res.Average)
	assert.InDelta(t, 0.13333, *res.Average, 1e-4)
	assert.Equal(t, model.SentimentPositive, res.Label)
}

func TestAggregate_LabelBoundaries(t *testing.T) {
	tests := []struct {
		polarity float64
		want     model.SentimentLabel
	}{
		{0.05, model.SentimentNeutral}, // strict >
		{0.051, model.SentimentPositive},
		{-0.05, model.SentimentNeutral}, // strict <
		{-0.051, model.SentimentNegative},
		{0, model.SentimentNeutral},
	}
	for _, tt := range tests {
		res := Aggregate([]float64{tt.polarity})
		require.NotNil(t, res.Average)
		assert.Equal(t, tt.want, res.Label, "polarity %v", tt.polarity)
	}
}

func TestAggregate_ZeroAverageIsDefined(t *testing.T) {
	res := Aggregate([]float64{0.5, -0.5})
	require.NotNil(t, res.Average)
	assert.Equal(t, 0.0, *res.Average)
	assert.Equal(t, model.SentimentNeutral, res.Label)
}
