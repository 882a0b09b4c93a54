package sse

import (
	"context"
	"log/slog"
	"time"

	"github.com/starford/miti/internal/dateservice"
)

// TodaySource reports the current date.
type TodaySource interface {
	Today(ctx context.Context, lang string) (*dateservice.DateDetail, error)
}

// RunTodayPublisher publishes today's date once at start and then on every
// tick. The broker drops ticks on which the date did not change, so clients
// see one event per day rollover. It returns when ctx is done.
func RunTodayPublisher(ctx context.Context, src TodaySource, b *Broker, tick time.Duration, logger *slog.Logger) error {
	if tick <= 0 {
		tick = time.Minute
	}
	publish := func() {
		d, err := src.Today(ctx, "")
		if err != nil {
			logger.Warn("today lookup failed", slog.String("error", err.Error()))
			return
		}
		b.PublishToday(d.BS, d)
	}

	publish()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			publish()
		}
	}
}
