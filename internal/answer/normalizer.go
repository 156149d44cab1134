package answer

import (
	"strings"

	"github.com/povarna/fac-evaluator/internal/models"
)

const (
	thinkOpenTag  = "<think>"
	thinkCloseTag = "</think>"
)

// ExtractFinalAnswer locates the terminal answer in an agent response.
// A directly reported final answer wins; otherwise the last assistant
// message of the transcript is used, falling back to the last message of
// any role. An empty or malformed response yields an empty string so the
// judge can still classify it.
func ExtractFinalAnswer(resp models.AgentResponse) string {
	if resp.FinalAnswer != "" {
		return StripThink(resp.FinalAnswer)
	}

	for i := len(resp.Messages) - 1; i >= 0; i-- {
		if strings.EqualFold(resp.Messages[i].Role, "assistant") {
			return StripThink(resp.Messages[i].Content)
		}
	}

	if n := len(resp.Messages); n > 0 {
		return StripThink(resp.Messages[n-1].Content)
	}

	return ""
}

// StripThink removes <think>...</think> reasoning segments so the judge
// only sees the delivered answer. Text without such segments passes
// through unchanged. An opening tag that is never closed drops the rest
// of the text, since everything after it is deliberation.
func StripThink(s string) string {
	for {
		start := strings.Index(s, thinkOpenTag)
		if start == -1 {
			break
		}

		end := strings.Index(s[start:], thinkCloseTag)
		if end == -1 {
			s = s[:start]
			break
		}

		s = s[:start] + s[start+end+len(thinkCloseTag):]
	}

	return strings.TrimSpace(s)
}
