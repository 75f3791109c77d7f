package fundamentals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScope/internal/model"
)

func fullPeriod() model.FinancialPeriod {
	return model.FinancialPeriod{
		PeriodEnd:           time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		NetIncome:           model.Float(100e9),
		TotalDebt:           model.Float(120e9),
		TotalEquity:         model.Float(60e9),
		TotalRevenue:        model.Float(400e9),
		CashFromOps:         model.Float(110e9),
		CapitalExpenditures: model.Float(-10e9),
		SharesOutstanding:   model.Float(16e9),
		PeriodClosePrice:    model.Float(190),
	}
}

func TestBuildValuationRow_FullInputs(t *testing.T) {
	row := BuildValuationRow(fullPeriod())

	assert.Equal(t, 2023, row.Year)
	require.NotNil(t, row.FreeCashFlow)
	assert.InDelta(t, 100e9, *row.FreeCashFlow, 1)
	require.NotNil(t, row.ROE)
	assert.InDelta(t, 100.0/60.0*100, *row.ROE, 1e-9)
	require.NotNil(t, row.DebtToEquity)
	assert.InDelta(t, 2.0, *row.DebtToEquity, 1e-12)
	require.NotNil(t, row.ProfitMargin)
	assert.InDelta(t, 25.0, *row.ProfitMargin, 1e-12)

	// Per-share intermediates: EPS 6.25, book 3.75, sales 25, FCF 6.25.
	require.NotNil(t, row.PE)
	assert.InDelta(t, 190/6.25, *row.PE, 1e-9)
	require.NotNil(t, row.PB)
	assert.InDelta(t, 190/3.75, *row.PB, 1e-9)
	require.NotNil(t, row.PS)
	assert.InDelta(t, 190/25.0, *row.PS, 1e-9)
	require.NotNil(t, row.PFCF)
	assert.InDelta(t, 190/6.25, *row.PFCF, 1e-9)
}

func TestBuildValuationRow_ZeroEquity(t *testing.T) {
	p := fullPeriod()
	p.TotalEquity = model.Float(0)
	row := BuildValuationRow(p)

	assert.Nil(t, row.ROE)
	assert.Nil(t, row.DebtToEquity)
	assert.Nil(t, row.PB)

	// Independent fields are still computed.
	assert.NotNil(t, row.ProfitMargin)
	assert.NotNil(t, row.PE)
	assert.NotNil(t, row.FreeCashFlow)
}

func TestBuildValuationRow_MissingShares(t *testing.T) {
	p := fullPeriod()
	p.SharesOutstanding = nil
	row := BuildValuationRow(p)

	assert.Nil(t, row.PE)
	assert.Nil(t, row.PB)
	assert.Nil(t, row.PS)
	assert.Nil(t, row.PFCF)
	assert.NotNil(t, row.ROE)
	assert.NotNil(t, row.DebtToEquity)
	assert.NotNil(t, row.ProfitMargin)
}

func TestBuildValuationRow_MissingPrice(t *testing.T) {
	p := fullPeriod()
	p.PeriodClosePrice = nil
	row := BuildValuationRow(p)

	assert.Nil(t, row.PE)
	assert.Nil(t, row.PB)
	assert.Nil(t, row.PS)
	assert.Nil(t, row.PFCF)
	assert.NotNil(t, row.ROE)
}

func TestBuildValuationRow_MissingCapex(t *testing.T) {
	p := fullPeriod()
	p.CapitalExpenditures = nil
	row := BuildValuationRow(p)

	assert.Nil(t, row.FreeCashFlow)
	assert.Nil(t, row.PFCF)
	assert.NotNil(t, row.PE)
}

func TestBuildValuationRow_ZeroNetIncome(t *testing.T) {
	// Zero is a value, not a gap: ROE and margin are a defined 0, while P/E is
	// nil because the per-share earnings denominator is zero.
	p := fullPeriod()
	p.NetIncome = model.Float(0)
	row := BuildValuationRow(p)

	require.NotNil(t, row.ROE)
	assert.Equal(t, 0.0, *row.ROE)
	require.NotNil(t, row.ProfitMargin)
	assert.Equal(t, 0.0, *row.ProfitMargin)
	assert.Nil(t, row.PE)
}

func TestBuildValuationRow_EmptyPeriodIsTotal(t *testing.T) {
	row := BuildValuationRow(model.FinancialPeriod{PeriodEnd: time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, 2020, row.Year)
	assert.Nil(t, row.FreeCashFlow)
	assert.Nil(t, row.ROE)
	assert.Nil(t, row.DebtToEquity)
	assert.Nil(t, row.ProfitMargin)
	assert.Nil(t, row.PE)
	assert.Nil(t, row.PB)
	assert.Nil(t, row.PS)
	assert.Nil(t, row.PFCF)
}

func TestBuildValuationRows_CapsAtFivePeriods(t *testing.T) {
	periods := make([]model.FinancialPeriod, 7)
	for i := range periods {
		periods[i] = fullPeriod()
		periods[i].PeriodEnd = periods[i].PeriodEnd.AddDate(-i, 0, 0)
	}
	rows := BuildValuationRows(periods)
	require.Len(t, rows, 5)
	assert.Equal(t, 2023, rows[0].Year)
	assert.Equal(t, 2019, rows[4].Year)
}

func TestBuildValuationRows_SparsePeriodDoesNotBlockOthers(t *testing.T) {
	periods := []model.FinancialPeriod{
		fullPeriod(),
		{PeriodEnd: time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)}, // everything missing
		fullPeriod(),
	}
	rows := BuildValuationRows(periods)
	require.Len(t, rows, 3)
	assert.NotNil(t, rows[0].PE)
	assert.Nil(t, rows[1].PE)
	assert.NotNil(t, rows[2].PE)
}
