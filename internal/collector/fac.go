package collector

import (
	"context"

	"github.com/povarna/fac-evaluator/internal/aggregator"
	"github.com/povarna/fac-evaluator/internal/answer"
	"github.com/povarna/fac-evaluator/internal/models"
	"github.com/rs/zerolog"
)

// MetricAverageTaskSuccess is the fixed metric name this collector
// reports under. It is an external contract string.
const MetricAverageTaskSuccess = "Average Task Success (FAC Evaluator)"

// Judge grades one query-answer pair. Implementations never return an
// error; failures surface as Unsolved results.
type Judge interface {
	Evaluate(ctx context.Context, query string, answer string) models.EvaluationResult
}

// FACCollector measures Final Answer Correctness: each registered
// response is normalized, graded by the judge and recorded as one
// boolean outcome in the run log.
type FACCollector struct {
	judge   Judge
	results *aggregator.RunLog
	logger  *zerolog.Logger
}

func NewFACCollector(judge Judge, logger *zerolog.Logger) *FACCollector {
	return &FACCollector{
		judge:   judge,
		results: aggregator.NewRunLog(logger),
		logger:  logger,
	}
}

func (c *FACCollector) CollectedMetricNames() []string {
	return []string{MetricAverageTaskSuccess}
}

// SetUp starts a fresh run with an empty result log.
func (c *FACCollector) SetUp() {
	c.results.Reset()
}

func (c *FACCollector) PrepareForMeasurement(spec models.QuerySpecification) {}

// RegisterMeasurement runs the per-query pipeline and appends exactly
// one outcome. A failure anywhere in the pipeline, including a panic,
// records false and lets the run continue; the denominator of the final
// rate always equals the number of registered measurements.
func (c *FACCollector) RegisterMeasurement(ctx context.Context, spec models.QuerySpecification, response models.AgentResponse) {
	recorded := false
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Interface("panic", r).
				Str("query_id", spec.QueryID).
				Msg("evaluation pipeline panicked")
			if !recorded {
				c.results.Record(false)
			}
		}
	}()

	finalAnswer := answer.ExtractFinalAnswer(response)

	result := c.judge.Evaluate(ctx, spec.Query, finalAnswer)

	c.results.Record(result.IsSolved)
	recorded = true

	c.logger.Debug().
		Str("query", preview(spec.Query, 50)).
		Bool("is_solved", result.IsSolved).
		Msg("FAC query evaluated")
	c.logJudgeOutput(spec.Query, finalAnswer, result.Evaluation)
}

func (c *FACCollector) TearDown() {}

// ReportResults computes the run's solve rate. The rate is defined even
// for an empty run (0.0) and for a run where every query failed.
func (c *FACCollector) ReportResults() map[string]float64 {
	solved, total := c.results.Counts()
	rate := c.results.SolveRate()

	c.logger.Info().
		Float64("rate", rate).
		Int("solved", solved).
		Int("total", total).
		Msgf("%s: %.2f (Solved %d/%d queries)", MetricAverageTaskSuccess, rate, solved, total)

	return map[string]float64{
		MetricAverageTaskSuccess: rate,
	}
}

// logJudgeOutput writes the full judge transcript to the verbose channel.
func (c *FACCollector) logJudgeOutput(query, finalAnswer, evaluation string) {
	c.logger.Debug().
		Str("query", query).
		Str("answer", finalAnswer).
		Str("evaluation", evaluation).
		Msg("judge model evaluation")
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
