package calculator

import "errors"

// CalculateStochastic computes the stochastic oscillator: %K over the rolling
// high/low of `period` bars, and %D as the `smooth`-bar mean of %K. %K is nil
// before the window fills and whenever the window's high equals its low.
func CalculateStochastic(highs, lows, closes []float64, period, smooth int) (k, d []*float64, err error) {
	if period <= 0 || smooth <= 0 {
		return nil, nil, errors.New("period and smooth must be positive")
	}
	if len(highs) != len(closes) || len(lows) != len(closes) {
		return nil, nil, errors.New("high/low/close series must be the same length")
	}

	k = make([]*float64, len(closes))
	for i := period - 1; i < len(closes); i++ {
		hi := highs[i-period+1]
		lo := lows[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			if highs[j] > hi {
				hi = highs[j]
			}
			if lows[j] < lo {
				lo = lows[j]
			}
		}
		if hi == lo {
			continue // flat range, %K undefined
		}
		v := 100 * (closes[i] - lo) / (hi - lo)
		k[i] = &v
	}

	d = rollingMean(k, smooth)
	return k, d, nil
}
