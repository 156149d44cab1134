package judge

import (
	"strings"

	"github.com/rs/zerolog"
)

// StatusMarker is the literal phrase preceding the judge's status line.
// The prompt's worked examples contain it too, so a judge that echoes
// the prompt produces several occurrences before its real verdict.
const StatusMarker = "Answer Status"

// TruncateAtLastMarker cuts the text down to the last occurrence of the
// status marker, which is where the judge's own verdict starts. Text
// without the marker passes through unchanged.
func TruncateAtLastMarker(text string) string {
	if idx := strings.LastIndex(text, StatusMarker); idx != -1 {
		return text[idx:]
	}
	return text
}

// ParseVerdict classifies judge output as solved or unsolved.
// "unsolved" must be checked first: it contains "solved" as a substring,
// so the reversed order would never report an unsolved verdict. Output
// with neither token defaults to unsolved.
func ParseVerdict(evaluationText string, logger *zerolog.Logger) bool {
	text := strings.ToLower(strings.TrimSpace(evaluationText))

	if strings.Contains(text, "unsolved") {
		return false
	}
	if strings.Contains(text, "solved") {
		return true
	}

	logger.Warn().
		Str("evaluation", preview(evaluationText, 100)).
		Msg("unclear evaluation result, defaulting to unsolved")
	return false
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
