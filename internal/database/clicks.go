package database

import (
	"context"
	"sort"

	"github.com/lib/pq"

	"shortlink/internal/types"
)

func (db *Database) ExistingLinkIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	existing := make(map[int64]struct{}, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}
	var found []int64
	err := db.db.SelectContext(ctx, &found,
		`SELECT id FROM links WHERE id = ANY ($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = struct{}{}
	}
	return existing, nil
}

// CommitClickBatch writes one click row per record and bumps each link's
// click_count by its share of the batch, all in a single transaction. The
// counter update is read-then-add under FOR UPDATE, never a blind write,
// so two aggregator processes contending on the same link cannot lose an
// increment. Links are locked in id order to keep concurrent batches from
// deadlocking.
func (db *Database) CommitClickBatch(ctx context.Context, records []types.ClickRecord, counts map[int64]int64) error {
	tx, err := db.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx,
		`INSERT INTO clicks (link_id, ip, country, device, referrer, timestamp)
		 VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.LinkID, rec.IP, rec.Country, rec.Device, rec.Referrer, rec.Timestamp); err != nil {
			return err
		}
	}

	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		var current int64
		if err := tx.GetContext(ctx, &current,
			`SELECT click_count FROM links WHERE id = $1 FOR UPDATE`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE links SET click_count = $1 WHERE id = $2`, current+counts[id], id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (db *Database) ClicksByLink(ctx context.Context, linkID int64) ([]types.ClickRecord, error) {
	var clicks []types.ClickRecord
	err := db.db.SelectContext(ctx, &clicks,
		`SELECT id, link_id, ip, country, device, referrer, timestamp
		 FROM clicks WHERE link_id = $1 ORDER BY timestamp`, linkID)
	return clicks, err
}
