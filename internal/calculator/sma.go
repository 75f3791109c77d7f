package calculator

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"StockScope/internal/model"
)

// CalculateSMA computes the rolling simple moving average of values over the
// given window. Positions before the window first fills are nil.
func CalculateSMA(values []float64, window int) ([]*float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	out := make([]*float64, len(values))
	for i := window - 1; i < len(values); i++ {
		mean := stat.Mean(values[i-window+1:i+1], nil)
		out[i] = &mean
	}
	return out, nil
}

// rollingMean averages an already-partial series over window. An output
// position is defined only when every input in its window is defined.
func rollingMean(series []*float64, window int) []*float64 {
	out := make([]*float64, len(series))
	buf := make([]float64, 0, window)
	for i := window - 1; i < len(series); i++ {
		buf = buf[:0]
		for j := i - window + 1; j <= i; j++ {
			if series[j] == nil {
				break
			}
			buf = append(buf, *series[j])
		}
		if len(buf) == window {
			mean := stat.Mean(buf, nil)
			out[i] = &mean
		}
	}
	return out
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func extractHighs(bars []model.OHLCV) []float64 {
	highs := make([]float64, len(bars))
	for i, b := range bars {
		highs[i] = b.High
	}
	return highs
}

func extractLows(bars []model.OHLCV) []float64 {
	lows := make([]float64, len(bars))
	for i, b := range bars {
		lows[i] = b.Low
	}
	return lows
}
