// Package sentiment reduces per-headline polarity scores, computed upstream by
// a text-analysis collaborator, into one aggregate reading.
package sentiment

import (
	"gonum.org/v1/gonum/stat"

	"StockScope/internal/model"
)

// Label thresholds on the average polarity.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Aggregate averages the polarity scores and labels the result. An empty input
// yields a result with a nil Average ("no headlines"), which callers must keep
// distinct from a genuine zero average.
func Aggregate(polarities []float64) model.SentimentResult {
	if len(polarities) == 0 {
		return model.SentimentResult{}
	}
	avg := stat.Mean(polarities, nil)

	label := model.SentimentNeutral
	switch {
	case avg > positiveThreshold:
		label = model.SentimentPositive
	case avg < negativeThreshold:
		label = model.SentimentNegative
	}
	return model.SentimentResult{Average: &avg, Label: label}
}
