package model

// IndicatorSet holds all computed indicator series, each index-aligned with
// the source bars. A nil entry means the indicator is undefined at that index
// (lookback window not yet filled, or a degenerate window).
type IndicatorSet struct {
	SMA50  []*float64
	SMA200 []*float64
	RSI    []*float64
	MACD   []*float64
	Signal []*float64
	StochK []*float64
	StochD []*float64
}

// LastDefined returns the most recent defined value of a series, or nil when
// the series has none.
func LastDefined(series []*float64) *float64 {
	for i := len(series) - 1; i >= 0; i-- {
		if series[i] != nil {
			return series[i]
		}
	}
	return nil
}

// PriceMovement summarizes the price change across a full history.
type PriceMovement struct {
	StartPrice float64
	EndPrice   float64
	ChangePct  float64
}

// SignificantGrowth reports whether the total change clears the +20% mark.
func (m PriceMovement) SignificantGrowth() bool {
	return m.ChangePct > 20
}
