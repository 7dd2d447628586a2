package service

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const defaultSweepInterval = 24 * time.Hour

// Sweeper runs the daily lifecycle transitions: flipping past-deadline
// links to expired and downgrading lapsed subscriptions. Both updates are
// idempotent and monotonic, so a failed run is simply retried by the next
// day's tick.
type Sweeper struct {
	links    LinkStore
	subs     SubscriptionStore
	interval time.Duration
	now      func() time.Time
}

func NewSweeper(links LinkStore, subs SubscriptionStore) *Sweeper {
	return &Sweeper{
		links:    links,
		subs:     subs,
		interval: defaultSweepInterval,
		now:      time.Now,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.RunOnce(ctx); err != nil {
					slog.Error("lifecycle sweep failed", "error", err)
				}
			}
		}
	}()
}

// RunOnce performs one sweep. A failure in one transition does not stop
// the other.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	now := s.now()

	expired, linkErr := s.links.ExpireLinks(ctx, now)
	if linkErr == nil && expired > 0 {
		slog.Info("expired links", "count", expired)
	}

	downgraded, subErr := s.subs.DowngradeLapsed(ctx, now)
	if subErr == nil && downgraded > 0 {
		slog.Info("downgraded lapsed subscriptions", "count", downgraded)
	}

	return errors.Join(linkErr, subErr)
}
