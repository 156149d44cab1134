package aggregator

import (
	"sync"

	"github.com/rs/zerolog"
)

// RunLog is the per-run record of query outcomes. Every evaluated query
// appends exactly one boolean; the solve rate is derived from the log at
// report time. Appends are mutex-guarded so a harness may register
// measurements concurrently without losing entries.
type RunLog struct {
	mu      sync.Mutex
	results []bool
	logger  *zerolog.Logger
}

func NewRunLog(logger *zerolog.Logger) *RunLog {
	return &RunLog{
		logger: logger,
	}
}

// Record appends one outcome to the log.
func (l *RunLog) Record(solved bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results = append(l.results, solved)
}

// Counts returns the number of solved queries and the total recorded.
func (l *RunLog) Counts() (solved int, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, isSolved := range l.results {
		if isSolved {
			solved++
		}
	}
	return solved, len(l.results)
}

// SolveRate returns solved/total. An empty run reports exactly 0.0
// rather than an error, so the final metric is always defined.
func (l *RunLog) SolveRate() float64 {
	solved, total := l.Counts()
	if total == 0 {
		return 0.0
	}
	return float64(solved) / float64(total)
}

// Reset clears the log at the start of a new run.
func (l *RunLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.results) > 0 {
		l.logger.Debug().Int("discarded", len(l.results)).Msg("run log reset")
	}
	l.results = nil
}
