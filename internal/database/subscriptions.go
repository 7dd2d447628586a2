package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shortlink/internal/types"
)

func (db *Database) ActiveSubscription(ctx context.Context, userID int64) (*types.Subscription, error) {
	var sub types.Subscription
	err := db.db.GetContext(ctx, &sub,
		`SELECT id, user_id, plan_type, active_until, stripe_subscription_id
		 FROM subscriptions WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// DowngradeLapsed resets every paid subscription whose active_until has
// passed back to the free plan.
func (db *Database) DowngradeLapsed(ctx context.Context, now time.Time) (int64, error) {
	res, err := db.db.ExecContext(ctx,
		`UPDATE subscriptions
		 SET plan_type = $1, active_until = NULL, stripe_subscription_id = NULL
		 WHERE plan_type <> $1 AND active_until IS NOT NULL AND active_until < $2`,
		types.PlanFree, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
