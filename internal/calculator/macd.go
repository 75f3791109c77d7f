package calculator

import "errors"

// MACD spans, fixed to the conventional 12/26/9 setup.
const (
	macdFastSpan   = 12
	macdSlowSpan   = 26
	macdSignalSpan = 9
)

// CalculateEMA computes the exponentially weighted moving average with
// alpha = 2/(span+1), seeded with the first value (no SMA warm-up period).
func CalculateEMA(values []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out, nil
	}
	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i]*alpha + out[i-1]*(1-alpha)
	}
	return out, nil
}

// CalculateMACD returns the MACD line (EMA12 - EMA26) and its signal line
// (EMA9 of the MACD line). Both are defined from index 0 because the EMA
// recurrence seeds with the first value.
func CalculateMACD(closes []float64) (macd, signal []*float64, err error) {
	fast, err := CalculateEMA(closes, macdFastSpan)
	if err != nil {
		return nil, nil, err
	}
	slow, err := CalculateEMA(closes, macdSlowSpan)
	if err != nil {
		return nil, nil, err
	}

	diff := make([]float64, len(closes))
	for i := range closes {
		diff[i] = fast[i] - slow[i]
	}
	sig, err := CalculateEMA(diff, macdSignalSpan)
	if err != nil {
		return nil, nil, err
	}

	macd = make([]*float64, len(closes))
	signal = make([]*float64, len(closes))
	for i := range closes {
		macd[i] = &diff[i]
		signal[i] = &sig[i]
	}
	return macd, signal, nil
}
