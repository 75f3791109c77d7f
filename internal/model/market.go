package model

import "time"

// OHLCV represents a single daily price bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the chronological price history for one symbol.
// Bars are strictly increasing by date; calendar gaps are tolerated.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// LastClose returns the most recent closing price, or nil for an empty series.
func (s *PriceSeries) LastClose() *float64 {
	if s == nil || len(s.Bars) == 0 {
		return nil
	}
	return Float(s.Bars[len(s.Bars)-1].Close)
}

// Float returns a pointer to v. Optional values throughout the engine are
// *float64, where nil means "no value" rather than zero.
func Float(v float64) *float64 { return &v }
