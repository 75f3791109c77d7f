package calculator

import (
	"fmt"

	"StockScope/internal/model"
)

// Indicator windows used throughout the engine.
const (
	SMAShortWindow   = 50
	SMALongWindow    = 200
	RSIPeriod        = 14
	StochasticPeriod = 14
	StochasticSmooth = 3
)

// ComputeIndicators derives all indicator series for the given bars. Every
// series in the result has the same length as bars, with nil entries where the
// lookback window exceeds the available history.
func ComputeIndicators(bars []model.OHLCV) (*model.IndicatorSet, error) {
	closes := extractCloses(bars)
	highs := extractHighs(bars)
	lows := extractLows(bars)

	set := &model.IndicatorSet{}
	var err error

	if set.SMA50, err = CalculateSMA(closes, SMAShortWindow); err != nil {
		return nil, fmt.Errorf("sma50: %w", err)
	}
	if set.SMA200, err = CalculateSMA(closes, SMALongWindow); err != nil {
		return nil, fmt.Errorf("sma200: %w", err)
	}
	if set.RSI, err = CalculateRSI(closes, RSIPeriod); err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	if set.MACD, set.Signal, err = CalculateMACD(closes); err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}
	if set.StochK, set.StochD, err = CalculateStochastic(highs, lows, closes, StochasticPeriod, StochasticSmooth); err != nil {
		return nil, fmt.Errorf("stochastic: %w", err)
	}
	return set, nil
}
