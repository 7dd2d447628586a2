package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shortlink/internal/types"
)

type ClickRequest struct {
	Slug     string `json:"slug"`
	IP       string `json:"ip"`
	Device   string `json:"device"`
	Country  string `json:"country"`
	Referrer string `json:"referrer"`
}

type IngestResult struct {
	Queued bool   `json:"queued"`
	Reason string `json:"reason,omitempty"`
}

// Ingestor validates a click against the link's time window and pushes it
// onto the queue buffer. No relational write happens here; the existence
// check is the only store access on this path.
type Ingestor struct {
	store LinkStore
	queue Queue
	now   func() time.Time
}

func NewIngestor(store LinkStore, queue Queue) *Ingestor {
	return &Ingestor{store: store, queue: queue, now: time.Now}
}

// Ingest never raises to the caller. A click that cannot be queued
// degrades to a logged no-op so ingestion failures can't break redirects.
func (in *Ingestor) Ingest(ctx context.Context, req ClickRequest) IngestResult {
	link, err := in.store.LinkBySlug(ctx, req.Slug)
	if err != nil {
		slog.Warn("click ingest: link lookup failed", "slug", req.Slug, "error", err)
		return IngestResult{Queued: false, Reason: "lookup failed"}
	}
	if link == nil {
		return IngestResult{Queued: false, Reason: "link not found"}
	}

	now := in.now()
	switch LinkWindow(link.ScheduleAt, link.ExpireAt, now) {
	case WindowExpired:
		return IngestResult{Queued: false, Reason: "expired"}
	case WindowPending:
		return IngestResult{Queued: false, Reason: "not started"}
	}

	event := types.ClickEvent{
		LinkID:    link.ID,
		Slug:      req.Slug,
		IP:        req.IP,
		Country:   req.Country,
		Device:    req.Device,
		Referrer:  req.Referrer,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("click ingest: encode failed", "slug", req.Slug, "error", err)
		return IngestResult{Queued: false, Reason: "encode failed"}
	}

	if err := in.queue.PushTail(ctx, payload); err != nil {
		slog.Warn("click ingest: queue push failed", "slug", req.Slug, "error", err)
		return IngestResult{Queued: false, Reason: "queue unavailable"}
	}
	return IngestResult{Queued: true}
}
