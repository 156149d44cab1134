package batch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/povarna/fac-evaluator/internal/models"
	"github.com/rs/zerolog"
)

// InputRecord is one line of a batch input file. A malformed line is
// reported as a record carrying its parse error, not silently dropped.
type InputRecord struct {
	Event      models.MeasurementEvent
	LineNumber int
	Error      error
}

type Reader struct {
	r      io.Reader
	logger *zerolog.Logger
}

func NewReader(r io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		r:      r,
		logger: logger,
	}
}

// ReadAll streams NDJSON records. Blank lines are skipped; line numbers
// refer to the original file.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.r)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			if err := json.Unmarshal(line, &record.Event); err != nil {
				record.Error = err
			}

			select {
			case out <- record:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Msg("failed to read input")
		}
	}()

	return out
}
