package service

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"shortlink/internal/types"
)

// LinkStore is the relational view of links and domains.
type LinkStore interface {
	DomainByID(ctx context.Context, id int64) (*types.Domain, error)
	PublicDomain(ctx context.Context) (*types.Domain, error)
	LinkCodeExists(ctx context.Context, domainID int64, code string) (bool, error)
	CreateLink(ctx context.Context, link *types.Link) error
	LinksByShortCode(ctx context.Context, code string) ([]types.LinkWithDomain, error)
	LinkBySlug(ctx context.Context, slug string) (*types.Link, error)
	LinkByID(ctx context.Context, id, userID int64) (*types.LinkWithDomain, error)
	CountAnonymousLinksByIP(ctx context.Context, ip string, since time.Time) (int, error)
	CountLinksByUser(ctx context.Context, userID int64, since time.Time) (int, error)
	ExpireLinks(ctx context.Context, now time.Time) (int64, error)
}

// ClickStore persists aggregated click batches.
type ClickStore interface {
	ExistingLinkIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error)
	CommitClickBatch(ctx context.Context, records []types.ClickRecord, counts map[int64]int64) error
	ClicksByLink(ctx context.Context, linkID int64) ([]types.ClickRecord, error)
}

type SubscriptionStore interface {
	ActiveSubscription(ctx context.Context, userID int64) (*types.Subscription, error)
	DowngradeLapsed(ctx context.Context, now time.Time) (int64, error)
}

// Queue is the durable FIFO buffer between ingestion and aggregation.
type Queue interface {
	PushTail(ctx context.Context, payload []byte) error
	PopHeadBatch(ctx context.Context, n int) ([][]byte, error)
}

// Entitlements answers whether a user's plan unlocks custom domains and
// unlimited link creation. Consumed, not computed, by this core.
type Entitlements interface {
	PaidPlan(ctx context.Context, userID int64) (bool, error)
}
