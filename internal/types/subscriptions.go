package types

import "time"

const (
	PlanFree      = "free"
	PlanQuarterly = "quarterly"
	PlanAnnual    = "annual"
	PlanBundle    = "bundle"
)

type Subscription struct {
	ID                   int64      `json:"id" db:"id"`
	UserID               int64      `json:"user_id" db:"user_id"`
	PlanType             string     `json:"plan_type" db:"plan_type"`
	ActiveUntil          *time.Time `json:"active_until,omitempty" db:"active_until"`
	StripeSubscriptionID *string    `json:"-" db:"stripe_subscription_id"`
}
