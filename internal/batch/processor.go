package batch

import (
	"context"
	"sync"

	"github.com/povarna/fac-evaluator/internal/collector"
	"github.com/rs/zerolog"
)

// Processor drives the metric collector over a batch of records with a
// bounded worker pool. Records that failed to parse are skipped with a
// warning; they never reached the evaluation pipeline, so they do not
// enter the run's denominator.
type Processor struct {
	collector collector.MetricCollector
	workers   int
	logger    *zerolog.Logger
}

func NewProcessor(c collector.MetricCollector, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		collector: c,
		workers:   workers,
		logger:    logger,
	}
}

// Process evaluates all parseable records and returns the counts of
// processed and skipped records.
func (p *Processor) Process(ctx context.Context, records []InputRecord) (processed int, skipped int) {
	jobs := make(chan InputRecord)
	var wg sync.WaitGroup

	var mu sync.Mutex

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range jobs {
				p.collector.RegisterMeasurement(ctx, record.Event.QuerySpec(), record.Event.Response)

				mu.Lock()
				processed++
				mu.Unlock()
			}
		}()
	}

	for _, record := range records {
		if record.Error != nil {
			p.logger.Warn().
				Int("line", record.LineNumber).
				Err(record.Error).
				Msg("skipping unparseable record")
			skipped++
			continue
		}

		select {
		case jobs <- record:
		case <-ctx.Done():
			p.logger.Warn().Msg("batch processing cancelled")
			close(jobs)
			wg.Wait()
			return processed, skipped
		}
	}

	close(jobs)
	wg.Wait()
	return processed, skipped
}
