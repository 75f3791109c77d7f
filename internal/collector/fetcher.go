package collector

import (
	"time"

	"StockScope/internal/model"
)

// Provider supplies the three external inputs the engine consumes: price
// history, fundamentals (periods, shares outstanding, quote snapshot), and
// per-headline sentiment polarities.
type Provider interface {
	FetchBars(symbol string) ([]model.OHLCV, error)
	FetchFundamentals(symbol string) ([]model.FinancialPeriod, *model.QuoteSnapshot, error)
	FetchPolarities(symbol string) ([]float64, error)
	Name() string
}

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Price      float64
	Days       int
	Bars       []model.OHLCV
	Periods    []model.FinancialPeriod
	Quote      *model.QuoteSnapshot
	Polarities []float64
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) FetchBars(_ string) ([]model.OHLCV, error) {
	if m.Bars != nil {
		return m.Bars, nil
	}
	days := m.Days
	if days == 0 {
		days = 300
	}
	return generateBars(m.Price, days), nil
}

func (m *MockProvider) FetchFundamentals(_ string) ([]model.FinancialPeriod, *model.QuoteSnapshot, error) {
	return m.Periods, m.Quote, nil
}

func (m *MockProvider) FetchPolarities(_ string) ([]float64, error) {
	return m.Polarities, nil
}

// generateBars produces a gently trending synthetic daily series around
// basePrice, one bar per calendar day ending yesterday.
func generateBars(basePrice float64, count int) []model.OHLCV {
	if basePrice == 0 {
		basePrice = 100
	}
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
