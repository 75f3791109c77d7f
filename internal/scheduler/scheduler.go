package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockScope/internal/collector"
	"StockScope/internal/fundamentals"
	"StockScope/internal/recorder"
	"StockScope/internal/report"
	"StockScope/internal/strategy"
)

// Scheduler runs the full analysis for every configured symbol on a cron
// schedule. Symbols carry no shared state, so each one is analyzed
// independently and a failure never blocks the rest.
type Scheduler struct {
	Cron     *cron.Cron
	Provider collector.Provider
	Symbols  []string
	Recorder recorder.Recorder
}

// NewScheduler creates a new Scheduler.
func NewScheduler(provider collector.Provider, symbols []string, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Provider: provider,
		Symbols:  symbols,
		Recorder: rec,
	}
}

// Register adds the periodic analysis task.
func (s *Scheduler) Register(analyzeCron string) error {
	if _, err := s.Cron.AddFunc(analyzeCron, s.analyzeTask); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the analysis task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.analyzeTask()
}

func (s *Scheduler) analyzeTask() {
	log.Printf("[INFO] running analysis for %d symbols", len(s.Symbols))
	for _, symbol := range s.Symbols {
		s.analyzeSymbol(symbol)
	}
}

func (s *Scheduler) analyzeSymbol(symbol string) {
	snap, err := collector.NewCollector(s.Provider, symbol).Collect()
	if err != nil {
		log.Printf("[ERROR] collect %s: %v", symbol, err)
		return
	}

	analysis, err := strategy.Analyze(snap.Series, snap.Polarities)
	if err != nil {
		log.Printf("[ERROR] analyze %s: %v", symbol, err)
		return
	}

	rows, verdict := fundamentals.Evaluate(snap.Periods)

	fmt.Println(report.FormatAnalysisReport(analysis, snap.Quote, rows, verdict))

	if err := s.Recorder.RecordAnalysis(analysis); err != nil {
		log.Printf("[ERROR] record analysis %s: %v", symbol, err)
	}
	if err := s.Recorder.RecordQuality(symbol, verdict); err != nil {
		log.Printf("[ERROR] record quality %s: %v", symbol, err)
	}
}
