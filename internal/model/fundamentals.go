package model

import "time"

// FinancialPeriod holds the reported figures for one fiscal year. Optional
// fields are nil when the provider did not report them.
type FinancialPeriod struct {
	PeriodEnd           time.Time
	NetIncome           *float64
	TotalDebt           *float64
	TotalEquity         *float64
	TotalRevenue        *float64
	CashFromOps         *float64
	CapitalExpenditures *float64 // conventionally reported as a negative figure
	SharesOutstanding   *float64
	PeriodClosePrice    *float64 // nearest trading close at/after PeriodEnd
}

// ValuationRow holds the derived ratios for one financial period. Raw figures
// are carried through for display; any field whose inputs were missing or
// whose denominator was zero stays nil.
type ValuationRow struct {
	Year         int
	NetIncome    *float64
	TotalDebt    *float64
	TotalEquity  *float64
	FreeCashFlow *float64
	ROE          *float64 // percent
	DebtToEquity *float64
	ProfitMargin *float64 // percent
	PE           *float64
	PB           *float64
	PS           *float64
	PFCF         *float64
}

// QualityVerdict aggregates per-period quality checks.
type QualityVerdict struct {
	PeriodsEvaluated int
	PeriodsPassing   int
	OverallPass      bool
}

// Insufficient reports whether no periods could be evaluated at all. This is a
// distinct state from a failing verdict over evaluated periods.
func (v QualityVerdict) Insufficient() bool { return v.PeriodsEvaluated == 0 }

// QuoteSnapshot carries point-in-time figures from the fundamentals provider.
// These are passed through unmodified, never recomputed.
type QuoteSnapshot struct {
	MarketCap     *float64 `json:"market_cap"`
	TrailingPE    *float64 `json:"trailing_pe"`
	TrailingEPS   *float64 `json:"trailing_eps"`
	DividendYield *float64 `json:"dividend_yield"`
	High52Week    *float64 `json:"high_52_week"`
	Low52Week     *float64 `json:"low_52_week"`
}
