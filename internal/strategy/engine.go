package strategy

import (
	"errors"
	"log"

	"StockScope/internal/calculator"
	"StockScope/internal/model"
	"StockScope/internal/sentiment"
)

// Analysis bundles everything computed for one symbol in one pass.
type Analysis struct {
	Symbol         string
	Indicators     *model.IndicatorSet
	Crossovers     model.CrossoverResult
	Sentiment      model.SentimentResult
	Movement       *model.PriceMovement
	Recommendation model.Recommendation
}

// Analyze runs the full technical pipeline: indicators, crossover detection,
// sentiment aggregation, and the decision rule. The input series is not
// mutated and no state is shared between invocations.
func Analyze(series *model.PriceSeries, polarities []float64) (*Analysis, error) {
	if series == nil || len(series.Bars) == 0 {
		return nil, errors.New("empty price series")
	}

	ind, err := calculator.ComputeIndicators(series.Bars)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		Symbol:     series.Symbol,
		Indicators: ind,
		Crossovers: DetectCrossovers(ind, len(series.Bars)),
		Sentiment:  sentiment.Aggregate(polarities),
	}
	a.Recommendation = Decide(a.Crossovers, a.Sentiment)

	if mv, err := calculator.CalculateMovement(series.Bars); err != nil {
		log.Printf("[WARN] price movement for %s: %v", series.Symbol, err)
	} else {
		a.Movement = &mv
	}
	return a, nil
}
