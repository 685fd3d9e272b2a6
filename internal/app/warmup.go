package app

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const warmupConcurrency = 4

// Event types the season-wide views read on every request.
var warmupEventTypes = []event.Type{
	event.TypeShot,
	event.TypePass,
	event.TypeStartingXI,
}

// Warmup primes the read-through cache with the season-wide lists.
func Warmup(ctx context.Context, repos Repositories, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}
	started := time.Now()

	p := pool.New().WithContext(ctx).WithMaxGoroutines(warmupConcurrency)
	p.Go(func(ctx context.Context) error {
		if _, err := repos.Matches.List(ctx); err != nil {
			return fmt.Errorf("warm matches: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		if _, err := repos.Lineups.List(ctx); err != nil {
			return fmt.Errorf("warm lineups: %w", err)
		}
		return nil
	})
	for _, eventType := range warmupEventTypes {
		p.Go(func(ctx context.Context) error {
			if _, err := repos.Events.ListByType(ctx, eventType); err != nil {
				return fmt.Errorf("warm %s events: %w", eventType, err)
			}
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return err
	}
	logger.Info("cache warmed", "duration_ms", time.Since(started).Milliseconds())
	return nil
}
