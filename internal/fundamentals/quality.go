package fundamentals

import "StockScope/internal/model"

// Buffett-style thresholds applied to each period.
const (
	minROE          = 15.0
	minProfitMargin = 10.0
	maxDebtToEquity = 0.5
	maxPE           = 20.0
	maxPB           = 3.0
	maxPS           = 4.0
	maxPFCF         = 20.0
	passRatio       = 0.6
)

func above(v *float64, limit float64) bool { return v != nil && *v > limit }
func below(v *float64, limit float64) bool { return v != nil && *v < limit }

// PeriodPasses reports whether a valuation row meets every quality criterion.
// A missing field fails the period, except P/FCF, which only fails when
// present and too high.
func PeriodPasses(row model.ValuationRow) bool {
	return above(row.NetIncome, 0) &&
		above(row.ROE, minROE) &&
		above(row.ProfitMargin, minProfitMargin) &&
		below(row.DebtToEquity, maxDebtToEquity) &&
		below(row.PE, maxPE) &&
		below(row.PB, maxPB) &&
		below(row.PS, maxPS) &&
		(row.PFCF == nil || *row.PFCF < maxPFCF)
}

// EvaluateQuality aggregates per-period checks into the overall verdict:
// pass when at least passRatio of the evaluated periods pass. Zero evaluated
// periods leaves the verdict in its insufficient-data state.
func EvaluateQuality(rows []model.ValuationRow) model.QualityVerdict {
	verdict := model.QualityVerdict{PeriodsEvaluated: len(rows)}
	for _, row := range rows {
		if PeriodPasses(row) {
			verdict.PeriodsPassing++
		}
	}
	if verdict.PeriodsEvaluated > 0 {
		verdict.OverallPass = float64(verdict.PeriodsPassing) >= passRatio*float64(verdict.PeriodsEvaluated)
	}
	return verdict
}

// Evaluate builds valuation rows for up to five periods and scores them.
func Evaluate(periods []model.FinancialPeriod) ([]model.ValuationRow, model.QualityVerdict) {
	rows := BuildValuationRows(periods)
	return rows, EvaluateQuality(rows)
}
