// Package report renders analysis results as plain text, one section at a
// time, for a terminal or log-based presentation layer.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"StockScope/internal/model"
	"StockScope/internal/strategy"
)

func fmtFloat(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtPercent(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

func fmtCurrency(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return "$" + humanize.CommafWithDigits(*v, 0)
}

// FormatAnalysisReport renders the full dashboard for one symbol: technical
// summary, quote snapshot, valuation table, quality verdict, sentiment, and
// the final recommendation.
func FormatAnalysisReport(a *strategy.Analysis, quote *model.QuoteSnapshot, rows []model.ValuationRow, verdict model.QualityVerdict) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s Analysis | %s ===\n\n", a.Symbol, time.Now().Format("2006-01-02")))

	b.WriteString("Technical Indicator Summary\n")
	b.WriteString(fmt.Sprintf("  Golden/Death Cross: %s\n", a.Crossovers.Cross))
	macdLine := "No recent crossover"
	if a.Crossovers.MACD != model.MACDNone {
		macdLine = string(a.Crossovers.MACD)
	}
	b.WriteString(fmt.Sprintf("  MACD Signal: %s\n", macdLine))
	b.WriteString(fmt.Sprintf("  RSI: %s\n", fmtFloat(model.LastDefined(a.Indicators.RSI))))
	b.WriteString(fmt.Sprintf("  Stochastic %%K: %s, %%D: %s\n\n",
		fmtFloat(model.LastDefined(a.Indicators.StochK)),
		fmtFloat(model.LastDefined(a.Indicators.StochD))))

	if quote != nil {
		b.WriteString("Fundamental Data\n")
		b.WriteString(fmt.Sprintf("  Market Cap: %s\n", fmtCurrency(quote.MarketCap)))
		b.WriteString(fmt.Sprintf("  PE Ratio: %s\n", fmtFloat(quote.TrailingPE)))
		b.WriteString(fmt.Sprintf("  EPS: %s\n", fmtFloat(quote.TrailingEPS)))
		b.WriteString(fmt.Sprintf("  Dividend Yield: %s\n", fmtFloat(quote.DividendYield)))
		b.WriteString(fmt.Sprintf("  52 Week High: %s | 52 Week Low: %s\n\n",
			fmtFloat(quote.High52Week), fmtFloat(quote.Low52Week)))
	}

	b.WriteString(FormatQualityReport(a.Symbol, rows, verdict))

	b.WriteString("\nNews Sentiment\n")
	if a.Sentiment.Average != nil {
		b.WriteString(fmt.Sprintf("  Sentiment: %s (average polarity %.2f)\n", a.Sentiment.Label, *a.Sentiment.Average))
	} else {
		b.WriteString("  No news sentiment data available.\n")
	}

	b.WriteString("\nTechnical Analysis\n")
	b.WriteString(fmt.Sprintf("  Technical analysis suggests: %s.\n", a.Recommendation.Technical))
	for _, note := range a.Recommendation.Notes {
		b.WriteString("  - " + note + "\n")
	}

	b.WriteString(fmt.Sprintf("\nOverall Recommendation: %s\n", a.Recommendation.Overall))
	if a.Recommendation.CallOptionSuggested {
		b.WriteString("Option Trading Suggestion: Good time to consider BUYING CALL OPTIONS based on bullish technical signals and positive news sentiment.\n")
	} else {
		b.WriteString("Option Trading Suggestion: Not a strong signal to buy call options at this time.\n")
	}

	if a.Movement != nil {
		b.WriteString("\nPrice Movement\n")
		b.WriteString(fmt.Sprintf("  Starting Price: $%.2f | Current Price: $%.2f | Total Change: %.2f%%\n",
			a.Movement.StartPrice, a.Movement.EndPrice, a.Movement.ChangePct))
		if a.Movement.SignificantGrowth() {
			b.WriteString("  The stock has shown significant growth over the provided history.\n")
		} else {
			b.WriteString("  The stock has shown limited growth or decline over the provided history.\n")
		}
	}

	return b.String()
}

// FormatQualityReport renders the valuation table and the Buffett-style
// verdict with its interpretation lines.
func FormatQualityReport(symbol string, rows []model.ValuationRow, verdict model.QualityVerdict) string {
	var b strings.Builder

	b.WriteString("Financials + Valuation Ratios\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %d: Net Income %s | FCF %s | ROE %s | D/E %s | Margin %s | P/E %s | P/B %s | P/S %s | P/FCF %s\n",
			row.Year,
			fmtCurrency(row.NetIncome), fmtCurrency(row.FreeCashFlow),
			fmtPercent(row.ROE), fmtFloat(row.DebtToEquity), fmtPercent(row.ProfitMargin),
			fmtFloat(row.PE), fmtFloat(row.PB), fmtFloat(row.PS), fmtFloat(row.PFCF)))
	}

	switch {
	case verdict.Insufficient():
		b.WriteString("  Insufficient data to analyze.\n")
	case verdict.OverallPass:
		b.WriteString(fmt.Sprintf("  %s has performed well in the last %d years based on Buffett's criteria.\n",
			symbol, verdict.PeriodsEvaluated))
		b.WriteString(fmt.Sprintf("  Positive Years: %d out of %d met the criteria for strong financial health and valuation.\n",
			verdict.PeriodsPassing, verdict.PeriodsEvaluated))
	default:
		b.WriteString(fmt.Sprintf("  %s shows mixed or weak performance in the last %d years.\n",
			symbol, verdict.PeriodsEvaluated))
		b.WriteString(fmt.Sprintf("  Positive Years: %d out of %d met the criteria for strong financial health and valuation.\n",
			verdict.PeriodsPassing, verdict.PeriodsEvaluated))
	}
	return b.String()
}
