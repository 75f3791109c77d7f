package strategy

import "StockScope/internal/model"

// minCrossHistory is the bar count required before a golden or death cross is
// reported at all.
const minCrossHistory = 200

type crossDirection int

const (
	crossNone crossDirection = iota
	crossUp
	crossDown
)

// pairCross examines the last two points of an aligned fast/slow pair. Any
// undefined endpoint means no crossing can be claimed.
func pairCross(fast, slow []*float64) crossDirection {
	if len(fast) < 2 || len(slow) < 2 {
		return crossNone
	}
	f0, f1 := fast[len(fast)-2], fast[len(fast)-1]
	s0, s1 := slow[len(slow)-2], slow[len(slow)-1]
	if f0 == nil || f1 == nil || s0 == nil || s1 == nil {
		return crossNone
	}
	switch {
	case *f0 < *s0 && *f1 > *s1:
		return crossUp
	case *f0 > *s0 && *f1 < *s1:
		return crossDown
	}
	return crossNone
}

// DetectCross classifies a crossing between SMA-style fast and slow series.
func DetectCross(fast, slow []*float64) model.CrossType {
	switch pairCross(fast, slow) {
	case crossUp:
		return model.CrossGolden
	case crossDown:
		return model.CrossDeath
	}
	return model.CrossNone
}

// DetectMACDCross classifies a crossing between the MACD and signal lines.
func DetectMACDCross(macd, signal []*float64) model.MACDCross {
	switch pairCross(macd, signal) {
	case crossUp:
		return model.MACDBullish
	case crossDown:
		return model.MACDBearish
	}
	return model.MACDNone
}

// DetectCrossovers reports the most recent transitions for both indicator
// pairs. The SMA pair is only examined once at least minCrossHistory bars of
// history exist; the MACD pair has no such gate.
func DetectCrossovers(ind *model.IndicatorSet, barCount int) model.CrossoverResult {
	res := model.CrossoverResult{Cross: model.CrossNone, MACD: model.MACDNone}
	if barCount >= minCrossHistory {
		res.Cross = DetectCross(ind.SMA50, ind.SMA200)
	}
	res.MACD = DetectMACDCross(ind.MACD, ind.Signal)
	return res
}
