package collector

import (
	"fmt"
	"log"
	"time"

	"StockScope/internal/model"
)

// Snapshot is everything gathered for one symbol before analysis.
type Snapshot struct {
	Series     *model.PriceSeries
	Periods    []model.FinancialPeriod
	Quote      *model.QuoteSnapshot
	Polarities []float64
}

// Collector gathers all provider inputs for one symbol.
type Collector struct {
	Provider Provider
	Symbol   string
}

// NewCollector creates a new Collector.
func NewCollector(provider Provider, symbol string) *Collector {
	return &Collector{Provider: provider, Symbol: symbol}
}

// Collect fetches price history, fundamentals, and headline polarities.
// Price history is required; fundamentals and headlines degrade to empty
// inputs with a warning, so one failing source never blocks the analysis.
func (c *Collector) Collect() (*Snapshot, error) {
	bars, err := c.Provider.FetchBars(c.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch bars for %s: %w", c.Symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars for %s", c.Symbol)
	}

	snap := &Snapshot{
		Series: &model.PriceSeries{Symbol: c.Symbol, Bars: bars, FetchedAt: time.Now()},
	}

	periods, quote, err := c.Provider.FetchFundamentals(c.Symbol)
	if err != nil {
		log.Printf("[WARN] fetch fundamentals for %s: %v", c.Symbol, err)
	} else {
		snap.Periods = periods
		snap.Quote = quote
	}

	polarities, err := c.Provider.FetchPolarities(c.Symbol)
	if err != nil {
		log.Printf("[WARN] fetch headline polarities for %s: %v", c.Symbol, err)
	} else {
		snap.Polarities = polarities
	}

	// Periods without a close price get the nearest trading close at/after
	// their fiscal year end.
	for i := range snap.Periods {
		if snap.Periods[i].PeriodClosePrice == nil {
			snap.Periods[i].PeriodClosePrice = closeAtOrAfter(bars, snap.Periods[i].PeriodEnd)
		}
	}
	return snap, nil
}

// closeAtOrAfter returns the close of the first bar dated at or after t, or
// nil when the history ends before t.
func closeAtOrAfter(bars []model.OHLCV, t time.Time) *float64 {
	for _, b := range bars {
		if !b.Time.Before(t) {
			return model.Float(b.Close)
		}
	}
	return nil
}
