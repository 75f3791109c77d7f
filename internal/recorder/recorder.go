package recorder

import (
	"StockScope/internal/model"
	"StockScope/internal/strategy"
)

// Recorder persists analysis outcomes for later inspection. The engine itself
// stays pure; recording happens only in the orchestration layer.
type Recorder interface {
	RecordAnalysis(a *strategy.Analysis) error
	RecordQuality(symbol string, verdict model.QualityVerdict) error
	Close() error
}
