package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"shortlink/internal/types"
)

const pqUniqueViolation = "23505"

func (db *Database) DomainByID(ctx context.Context, id int64) (*types.Domain, error) {
	var d types.Domain
	err := db.db.GetContext(ctx, &d, `SELECT id, name, type, user_id FROM domains WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (db *Database) PublicDomain(ctx context.Context) (*types.Domain, error) {
	var d types.Domain
	err := db.db.GetContext(ctx, &d, `SELECT id, name, type, user_id FROM domains WHERE type = 'public' LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (db *Database) LinkCodeExists(ctx context.Context, domainID int64, code string) (bool, error) {
	var exists bool
	err := db.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM links WHERE domain_id = $1 AND short_code = $2)`, domainID, code)
	return exists, err
}

// CreateLink inserts the link and fills in its generated id and creation
// time. A lost race on (domain_id, short_code) comes back as
// ErrDuplicateCode so the caller can retry with a fresh code.
func (db *Database) CreateLink(ctx context.Context, link *types.Link) error {
	err := db.db.QueryRowxContext(ctx,
		`INSERT INTO links (short_code, domain_id, original_url, full_short_url, state,
		                    schedule_at, expire_at, geo_targeting, click_count, user_id, creator_ip)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at`,
		link.ShortCode, link.DomainID, link.OriginalURL, link.FullShortURL, link.State,
		link.ScheduleAt, link.ExpireAt, link.GeoTargeting, link.ClickCount, link.UserID, link.CreatorIP,
	).Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

// LinksByShortCode returns every link carrying the code, across all
// domains. Codes are only unique per domain, so the resolver picks the one
// matching the tenant derived from the request host.
func (db *Database) LinksByShortCode(ctx context.Context, code string) ([]types.LinkWithDomain, error) {
	var links []types.LinkWithDomain
	err := db.db.SelectContext(ctx, &links,
		`SELECT l.id, l.short_code, l.domain_id, l.original_url, l.full_short_url, l.state,
		        l.schedule_at, l.expire_at, l.geo_targeting, l.click_count, l.user_id,
		        l.creator_ip, l.created_at, d.name AS domain_name
		 FROM links l
		 JOIN domains d ON d.id = l.domain_id
		 WHERE l.short_code = $1`, code)
	return links, err
}

func (db *Database) LinkBySlug(ctx context.Context, slug string) (*types.Link, error) {
	var link types.Link
	err := db.db.GetContext(ctx, &link,
		`SELECT id, short_code, domain_id, original_url, full_short_url, state,
		        schedule_at, expire_at, geo_targeting, click_count, user_id, creator_ip, created_at
		 FROM links WHERE short_code = $1 ORDER BY id LIMIT 1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (db *Database) LinkByID(ctx context.Context, id, userID int64) (*types.LinkWithDomain, error) {
	var link types.LinkWithDomain
	err := db.db.GetContext(ctx, &link,
		`SELECT l.id, l.short_code, l.domain_id, l.original_url, l.full_short_url, l.state,
		        l.schedule_at, l.expire_at, l.geo_targeting, l.click_count, l.user_id,
		        l.creator_ip, l.created_at, d.name AS domain_name
		 FROM links l
		 JOIN domains d ON d.id = l.domain_id
		 WHERE l.id = $1 AND l.user_id = $2`, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (db *Database) CountAnonymousLinksByIP(ctx context.Context, ip string, since time.Time) (int, error) {
	var n int
	err := db.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM links WHERE creator_ip = $1 AND user_id IS NULL AND created_at >= $2`,
		ip, since)
	return n, err
}

func (db *Database) CountLinksByUser(ctx context.Context, userID int64, since time.Time) (int, error) {
	var n int
	err := db.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM links WHERE user_id = $1 AND created_at >= $2`, userID, since)
	return n, err
}

// ExpireLinks flips every active link whose deadline has passed. Monotonic:
// reruns with a later now only ever expire more, never reactivate.
func (db *Database) ExpireLinks(ctx context.Context, now time.Time) (int64, error) {
	res, err := db.db.ExecContext(ctx,
		`UPDATE links SET state = $1
		 WHERE state = $2 AND expire_at IS NOT NULL AND expire_at < $3`,
		types.StateExpired, types.StateActive, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
