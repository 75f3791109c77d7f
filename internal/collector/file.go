package collector

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"StockScope/internal/model"
)

// FileProvider reads pre-downloaded data from a local directory:
//
//	<dir>/<symbol>_bars.csv          date,open,high,low,close,volume
//	<dir>/<symbol>_fundamentals.json periods + shares outstanding + quote
//	<dir>/<symbol>_headlines.json    headline polarity scores
//
// It exists so the engine can run without any network collaborator.
type FileProvider struct {
	Dir string
}

// NewFileProvider creates a provider rooted at dir.
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{Dir: dir}
}

func (f *FileProvider) Name() string { return "file" }

const barDateLayout = "2006-01-02"

func (f *FileProvider) FetchBars(symbol string) ([]model.OHLCV, error) {
	path := filepath.Join(f.Dir, symbol+"_bars.csv")
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bars file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read bars csv: %w", err)
	}

	bars := make([]model.OHLCV, 0, len(records))
	for i, rec := range records {
		if len(rec) < 6 {
			return nil, fmt.Errorf("bars csv row %d: expected 6 columns, got %d", i+1, len(rec))
		}
		t, err := time.Parse(barDateLayout, rec[0])
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("bars csv row %d: %w", i+1, err)
		}
		var vals [5]float64
		for j := 1; j <= 5; j++ {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("bars csv row %d col %d: %w", i+1, j+1, err)
			}
			vals[j-1] = v
		}
		bars = append(bars, model.OHLCV{
			Time: t, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3], Volume: vals[4],
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// filePeriod mirrors one fiscal year in the fundamentals JSON. Optional
// figures decode to nil when absent, which is exactly the engine's "no value".
type filePeriod struct {
	PeriodEnd           string   `json:"period_end"`
	NetIncome           *float64 `json:"net_income"`
	TotalDebt           *float64 `json:"total_debt"`
	TotalEquity         *float64 `json:"total_equity"`
	TotalRevenue        *float64 `json:"total_revenue"`
	CashFromOps         *float64 `json:"cash_from_ops"`
	CapitalExpenditures *float64 `json:"capital_expenditures"`
	PeriodClosePrice    *float64 `json:"period_close_price"`
}

type fileFundamentals struct {
	SharesOutstanding *float64             `json:"shares_outstanding"`
	Quote             *model.QuoteSnapshot `json:"quote"`
	Periods           []filePeriod         `json:"periods"`
}

func (f *FileProvider) FetchFundamentals(symbol string) ([]model.FinancialPeriod, *model.QuoteSnapshot, error) {
	data, err := os.ReadFile(filepath.Join(f.Dir, symbol+"_fundamentals.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("read fundamentals file: %w", err)
	}
	var doc fileFundamentals
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse fundamentals json: %w", err)
	}

	periods := make([]model.FinancialPeriod, 0, len(doc.Periods))
	for i, fp := range doc.Periods {
		end, err := time.Parse(barDateLayout, fp.PeriodEnd)
		if err != nil {
			return nil, nil, fmt.Errorf("fundamentals period %d: %w", i, err)
		}
		periods = append(periods, model.FinancialPeriod{
			PeriodEnd:           end,
			NetIncome:           fp.NetIncome,
			TotalDebt:           fp.TotalDebt,
			TotalEquity:         fp.TotalEquity,
			TotalRevenue:        fp.TotalRevenue,
			CashFromOps:         fp.CashFromOps,
			CapitalExpenditures: fp.CapitalExpenditures,
			SharesOutstanding:   doc.SharesOutstanding,
			PeriodClosePrice:    fp.PeriodClosePrice,
		})
	}

	// Newest first, matching how providers report fiscal years.
	sort.Slice(periods, func(i, j int) bool { return periods[i].PeriodEnd.After(periods[j].PeriodEnd) })
	return periods, doc.Quote, nil
}

type fileHeadline struct {
	Headline string  `json:"headline"`
	Polarity float64 `json:"polarity"`
}

func (f *FileProvider) FetchPolarities(symbol string) ([]float64, error) {
	data, err := os.ReadFile(filepath.Join(f.Dir, symbol+"_headlines.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no headlines is a valid state, not an error
		}
		return nil, fmt.Errorf("read headlines file: %w", err)
	}
	var headlines []fileHeadline
	if err := json.Unmarshal(data, &headlines); err != nil {
		return nil, fmt.Errorf("parse headlines json: %w", err)
	}
	polarities := make([]float64, len(headlines))
	for i, h := range headlines {
		polarities[i] = h.Polarity
	}
	return polarities, nil
}
