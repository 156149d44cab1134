package stream

import (
	"context"
	"fmt"

	"github.com/povarna/fac-evaluator/internal/collector"
	"github.com/povarna/fac-evaluator/internal/config"
	red "github.com/povarna/fac-evaluator/internal/redis"
	streamredis "github.com/povarna/fac-evaluator/internal/stream/redis"
	"github.com/rs/zerolog"
)

// NewStreamConsumer builds a consumer for the configured stream backend.
// Redis Streams is the only backend today; the indirection keeps the
// entrypoints backend-agnostic.
func NewStreamConsumer(
	ctx context.Context,
	cfg config.StreamConfig,
	consumerName string,
	c collector.MetricCollector,
	logger *zerolog.Logger,
) (StreamConsumer, error) {
	client, err := red.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 5)
	if err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return streamredis.NewConsumer(
		client,
		cfg.Stream,
		cfg.Group,
		consumerName,
		c,
		logger,
	), nil
}
