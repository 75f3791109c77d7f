package calculator

import "errors"

// CalculateRSI computes the RSI of the closes using a simple rolling mean of
// gains and losses over the last `period` price changes. The change at index 0
// is undefined, so the first defined RSI sits at index `period`.
//
// A window with no losses clamps to 100; a fully flat window (no gains and no
// losses) yields 50 rather than dividing zero by zero.
func CalculateRSI(closes []float64, period int) ([]*float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]*float64, len(closes))
	for i := period; i < len(closes); i++ {
		var sumGain, sumLoss float64
		for j := i - period + 1; j <= i; j++ {
			change := closes[j] - closes[j-1]
			if change > 0 {
				sumGain += change
			} else {
				sumLoss -= change
			}
		}
		avgGain := sumGain / float64(period)
		avgLoss := sumLoss / float64(period)

		var rsi float64
		switch {
		case avgLoss == 0 && avgGain == 0:
			rsi = 50.0
		case avgLoss == 0:
			rsi = 100.0
		default:
			rs := avgGain / avgLoss
			rsi = 100.0 - 100.0/(1.0+rs)
		}
		out[i] = &rsi
	}
	return out, nil
}
