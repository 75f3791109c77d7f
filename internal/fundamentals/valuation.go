// Package fundamentals derives valuation ratios from reported financial
// periods and scores them against a fixed quality rule set.
package fundamentals

import "StockScope/internal/model"

// maxPeriods caps how many fiscal years are evaluated, newest first.
const maxPeriods = 5

// safeDiv returns a/b, or nil when either operand is missing or b is zero.
func safeDiv(a, b *float64) *float64 {
	if a == nil || b == nil || *b == 0 {
		return nil
	}
	v := *a / *b
	return &v
}

// asPercent scales an optional ratio by 100.
func asPercent(v *float64) *float64 {
	if v == nil {
		return nil
	}
	p := *v * 100
	return &p
}

// BuildValuationRow derives the ratio row for a single financial period. It is
// total: any missing input or zero denominator leaves the affected fields nil
// while every independent field is still computed.
func BuildValuationRow(p model.FinancialPeriod) model.ValuationRow {
	row := model.ValuationRow{
		Year:        p.PeriodEnd.Year(),
		NetIncome:   p.NetIncome,
		TotalDebt:   p.TotalDebt,
		TotalEquity: p.TotalEquity,
	}

	// Capital expenditures are reported negative, so this sum subtracts.
	if p.CashFromOps != nil && p.CapitalExpenditures != nil {
		fcf := *p.CashFromOps + *p.CapitalExpenditures
		row.FreeCashFlow = &fcf
	}

	row.ROE = asPercent(safeDiv(p.NetIncome, p.TotalEquity))
	row.DebtToEquity = safeDiv(p.TotalDebt, p.TotalEquity)
	row.ProfitMargin = asPercent(safeDiv(p.NetIncome, p.TotalRevenue))

	// Per-share ratios: price divided by a per-share intermediate. A zero
	// per-share value is a zero denominator, hence nil.
	row.PE = safeDiv(p.PeriodClosePrice, safeDiv(p.NetIncome, p.SharesOutstanding))
	row.PB = safeDiv(p.PeriodClosePrice, safeDiv(p.TotalEquity, p.SharesOutstanding))
	row.PS = safeDiv(p.PeriodClosePrice, safeDiv(p.TotalRevenue, p.SharesOutstanding))
	row.PFCF = safeDiv(p.PeriodClosePrice, safeDiv(row.FreeCashFlow, p.SharesOutstanding))

	return row
}

// BuildValuationRows derives one row per period, newest first, capped at
// maxPeriods. Each period is computed in isolation; a sparse period never
// blocks the others.
func BuildValuationRows(periods []model.FinancialPeriod) []model.ValuationRow {
	n := len(periods)
	if n > maxPeriods {
		n = maxPeriods
	}
	rows := make([]model.ValuationRow, 0, n)
	for _, p := range periods[:n] {
		rows = append(rows, BuildValuationRow(p))
	}
	return rows
}
