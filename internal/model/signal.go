package model

// CrossType classifies the most recent SMA50/SMA200 crossing.
type CrossType string

const (
	CrossGolden CrossType = "Golden Cross"
	CrossDeath  CrossType = "Death Cross"
	CrossNone   CrossType = "None"
)

// MACDCross classifies the most recent MACD/Signal crossing.
type MACDCross string

const (
	MACDBullish MACDCross = "Bullish Crossover"
	MACDBearish MACDCross = "Bearish Crossover"
	MACDNone    MACDCross = "None"
)

// CrossoverResult reports the single most recent transition per pair.
// No event history is retained.
type CrossoverResult struct {
	Cross CrossType
	MACD  MACDCross
}

// TechnicalSignal is the three-way technical decision.
type TechnicalSignal string

const (
	SignalBuy  TechnicalSignal = "BUY"
	SignalSell TechnicalSignal = "SELL"
	SignalHold TechnicalSignal = "HOLD"
)

// OverallCall is the final two-way recommendation.
type OverallCall string

const (
	OverallBuy      OverallCall = "BUY"
	OverallHoldWait OverallCall = "HOLD/WAIT"
)

// SentimentLabel is the three-way reading of the average headline polarity.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNeutral  SentimentLabel = "Neutral"
	SentimentNegative SentimentLabel = "Negative"
)

// SentimentResult aggregates per-headline polarity scores. A nil Average means
// no headlines were supplied, which is distinct from an average of zero; Label
// is only meaningful when Average is set.
type SentimentResult struct {
	Average *float64
	Label   SentimentLabel
}

// Recommendation is the final output of the decision rule.
type Recommendation struct {
	Technical           TechnicalSignal
	Overall             OverallCall
	CallOptionSuggested bool
	Notes               []string
}
