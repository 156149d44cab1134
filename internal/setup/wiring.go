package setup

import (
	"context"
	"fmt"

	"github.com/povarna/fac-evaluator/internal/collector"
	"github.com/povarna/fac-evaluator/internal/config"
	"github.com/povarna/fac-evaluator/internal/judge"
	"github.com/povarna/fac-evaluator/internal/llm"
	"github.com/povarna/fac-evaluator/internal/llm/bedrock"
	"github.com/povarna/fac-evaluator/internal/llm/gpt"
	"github.com/povarna/fac-evaluator/internal/llm/remote"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Judge     *judge.FACJudge
	Collector *collector.FACCollector
	Logger    *zerolog.Logger
}

// Wire builds the evaluation pipeline from configuration. Construction
// fails fast on an unusable judge backend, before any query is
// processed.
func Wire(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	client, err := createJudgeClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create judge client: %w", err)
	}

	facJudge := judge.NewFACJudge(client, logger)
	facCollector := collector.NewFACCollector(facJudge, logger)

	logger.Info().
		Str("provider", cfg.Judge.Provider).
		Msg("FAC evaluator wired")

	return &Dependencies{
		Judge:     facJudge,
		Collector: facCollector,
		Logger:    logger,
	}, nil
}

func createJudgeClient(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (llm.Client, error) {
	switch cfg.Judge.Provider {
	case "remote":
		return remote.NewClient(cfg.Judge.URL, logger)
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.Judge.AWSRegion, cfg.Judge.BedrockModelID)
	case "openai":
		return gpt.NewClient(cfg.Judge.OpenAIKey, cfg.Judge.OpenAIModelID)
	default:
		return nil, fmt.Errorf("unsupported judge provider: %s", cfg.Judge.Provider)
	}
}
