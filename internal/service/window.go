package service

import "time"

type WindowState int

const (
	WindowActive WindowState = iota
	WindowPending
	WindowExpired
)

func (s WindowState) String() string {
	switch s {
	case WindowPending:
		return "pending"
	case WindowExpired:
		return "expired"
	default:
		return "active"
	}
}

// LinkWindow is the single authority for time-gating a link. The persisted
// state column is only a cached view for listing; the resolver, the
// ingestion check and the sweeper all derive the truth from here, so a slow
// sweep can never let an expired link keep resolving.
//
// Expiry wins over scheduling when both bounds are violated.
func LinkWindow(scheduleAt, expireAt *time.Time, now time.Time) WindowState {
	if expireAt != nil && now.After(*expireAt) {
		return WindowExpired
	}
	if scheduleAt != nil && now.Before(*scheduleAt) {
		return WindowPending
	}
	return WindowActive
}
