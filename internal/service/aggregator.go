package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"shortlink/internal/types"
)

const (
	defaultBatchSize = 100
	defaultInterval  = time.Minute
)

// Aggregator drains the click queue on a fixed interval and commits each
// batch to the relational store in one transaction.
//
// Popping a batch and committing it are two separate steps. If the process
// dies or the transaction fails between them, that batch is gone: the
// events were already removed from the queue and are not re-queued. This
// at-most-once window is a deliberate tradeoff, bounded to a single batch,
// favoring ingestion throughput over zero loss. The next tick always runs.
type Aggregator struct {
	queue     Queue
	clicks    ClickStore
	batchSize int
	interval  time.Duration
	now       func() time.Time
}

func NewAggregator(queue Queue, clicks ClickStore) *Aggregator {
	return &Aggregator{
		queue:     queue,
		clicks:    clicks,
		batchSize: defaultBatchSize,
		interval:  defaultInterval,
		now:       time.Now,
	}
}

func (a *Aggregator) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := a.RunOnce(ctx); err != nil {
					slog.Error("click aggregation failed, batch dropped", "error", err)
				}
			}
		}
	}()
}

// RunOnce drains and commits one batch. A malformed event never aborts the
// batch; events for since-deleted links are dropped before the transaction.
func (a *Aggregator) RunOnce(ctx context.Context) error {
	payloads, err := a.queue.PopHeadBatch(ctx, a.batchSize)
	if err != nil {
		return fmt.Errorf("pop click batch: %w", err)
	}

	events := make([]types.ClickEvent, 0, len(payloads))
	for _, payload := range payloads {
		var event types.ClickEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			slog.Warn("dropping unparsable click payload", "error", err)
			continue
		}
		events = append(events, event)
	}
	if len(events) == 0 {
		return nil
	}

	existing, err := a.clicks.ExistingLinkIDs(ctx, distinctLinkIDs(events))
	if err != nil {
		return fmt.Errorf("check link ids: %w", err)
	}

	records := make([]types.ClickRecord, 0, len(events))
	counts := make(map[int64]int64)
	for _, event := range events {
		if _, ok := existing[event.LinkID]; !ok {
			// Deletion can race ingestion; a click for a gone link is noise.
			slog.Warn("dropping click for deleted link", "link_id", event.LinkID)
			continue
		}
		records = append(records, types.ClickRecord{
			LinkID:    event.LinkID,
			IP:        event.IP,
			Country:   event.Country,
			Device:    event.Device,
			Referrer:  event.Referrer,
			Timestamp: a.parseEventTime(event.Timestamp),
		})
		counts[event.LinkID]++
	}
	if len(records) == 0 {
		return nil
	}

	if err := a.clicks.CommitClickBatch(ctx, records, counts); err != nil {
		return fmt.Errorf("commit click batch: %w", err)
	}
	slog.Info("click batch committed", "clicks", len(records), "links", len(counts))
	return nil
}

func (a *Aggregator) parseEventTime(s string) time.Time {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return a.now().UTC()
	}
	return ts
}

func distinctLinkIDs(events []types.ClickEvent) []int64 {
	seen := make(map[int64]struct{}, len(events))
	ids := make([]int64, 0, len(events))
	for _, event := range events {
		if _, ok := seen[event.LinkID]; ok {
			continue
		}
		seen[event.LinkID] = struct{}{}
		ids = append(ids, event.LinkID)
	}
	return ids
}
