package strategy

import "StockScope/internal/model"

// optionSentimentThreshold gates the call-option suggestion. It is deliberately
// stricter than the plain >0 check used for the overall recommendation.
const optionSentimentThreshold = 0.05

// Decide applies the technical decision rule and composes it with sentiment
// into the final recommendation. The bullish branch is checked first, so a
// golden cross paired with a bearish MACD crossover still resolves to BUY.
func Decide(cross model.CrossoverResult, sent model.SentimentResult) model.Recommendation {
	rec := model.Recommendation{Technical: model.SignalHold, Overall: model.OverallHoldWait}

	switch {
	case cross.Cross == model.CrossGolden || cross.MACD == model.MACDBullish:
		rec.Technical = model.SignalBuy
		rec.Notes = append(rec.Notes, "Bullish technical signals detected.")
	case cross.Cross == model.CrossDeath || cross.MACD == model.MACDBearish:
		rec.Technical = model.SignalSell
		rec.Notes = append(rec.Notes, "Bearish technical signals detected.")
	default:
		rec.Notes = append(rec.Notes, "No strong technical signals detected.")
	}

	if rec.Technical == model.SignalBuy && sent.Average != nil {
		if *sent.Average > 0 {
			rec.Overall = model.OverallBuy
		}
		if *sent.Average > optionSentimentThreshold {
			rec.CallOptionSuggested = true
		}
	}
	return rec
}
