package judge

import (
	"context"
	"fmt"

	"github.com/povarna/fac-evaluator/internal/llm"
	"github.com/povarna/fac-evaluator/internal/models"
	"github.com/rs/zerolog"
)

// maxNewTokens bounds the judge's generated verdict text.
const maxNewTokens = 512

// FACJudge grades a query-answer pair as Solved or Unsolved through a
// judge model backend.
type FACJudge struct {
	client llm.Client
	logger *zerolog.Logger
}

func NewFACJudge(client llm.Client, logger *zerolog.Logger) *FACJudge {
	return &FACJudge{
		client: client,
		logger: logger,
	}
}

// Evaluate renders the judge prompt, calls the judge model and parses
// the verdict. It never returns an error: every failure degrades to an
// Unsolved result carrying the failure reason, so one broken call can
// never abort an evaluation run.
func (j *FACJudge) Evaluate(ctx context.Context, query string, answer string) models.EvaluationResult {
	prompt, err := renderPrompt(query, answer)
	if err != nil {
		j.logger.Error().Err(err).Msg("failed to render judge prompt")
		return unsolved(fmt.Sprintf("Error rendering judge prompt: %v", err))
	}

	resp, err := j.client.GenerateText(ctx, llm.Request{
		Prompt:       prompt,
		MaxNewTokens: maxNewTokens,
	})
	if err != nil {
		j.logger.Error().Err(err).Msg("judge model call failed")
		return unsolved(fmt.Sprintf("Error calling LLM judge model: %v", err))
	}

	// A judge that continues the prompt echoes the worked examples'
	// status lines first; only the last one is its actual verdict.
	evaluation := TruncateAtLastMarker(resp.Content)
	isSolved := ParseVerdict(evaluation, j.logger)

	j.logger.Debug().
		Bool("is_solved", isSolved).
		Str("evaluation", evaluation).
		Msg("judge completed")

	return models.EvaluationResult{
		Evaluation: evaluation,
		IsSolved:   isSolved,
	}
}

func unsolved(reason string) models.EvaluationResult {
	return models.EvaluationResult{
		Evaluation: fmt.Sprintf("Answer Status: Unsolved\nReason: %s", reason),
		IsSolved:   false,
	}
}
