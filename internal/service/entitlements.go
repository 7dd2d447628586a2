package service

import (
	"context"
	"time"

	"shortlink/internal/types"
)

var paidPlans = map[string]bool{
	types.PlanQuarterly: true,
	types.PlanAnnual:    true,
	types.PlanBundle:    true,
}

// SubscriptionEntitlements answers entitlement questions from the
// subscriptions table: a paid plan that has not lapsed unlocks custom
// domains and unlimited link creation.
type SubscriptionEntitlements struct {
	subs SubscriptionStore
	now  func() time.Time
}

func NewSubscriptionEntitlements(subs SubscriptionStore) *SubscriptionEntitlements {
	return &SubscriptionEntitlements{subs: subs, now: time.Now}
}

func (e *SubscriptionEntitlements) PaidPlan(ctx context.Context, userID int64) (bool, error) {
	sub, err := e.subs.ActiveSubscription(ctx, userID)
	if err != nil {
		return false, err
	}
	if sub == nil || !paidPlans[sub.PlanType] {
		return false, nil
	}
	return sub.ActiveUntil != nil && sub.ActiveUntil.After(e.now()), nil
}
