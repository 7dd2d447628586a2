package types

import "time"

// ClickEvent is the queue-resident form of a click. It lives in Redis
// between ingestion and aggregation; Timestamp is string-encoded so the
// payload survives as plain JSON.
type ClickEvent struct {
	LinkID    int64  `json:"link_id"`
	Slug      string `json:"slug"`
	IP        string `json:"ip"`
	Country   string `json:"country"`
	Device    string `json:"device"`
	Referrer  string `json:"referrer"`
	Timestamp string `json:"timestamp"`
}

// ClickRecord is the committed form of a ClickEvent. Written only by the
// aggregator, never updated.
type ClickRecord struct {
	ID        int64     `json:"id" db:"id"`
	LinkID    int64     `json:"link_id" db:"link_id"`
	IP        string    `json:"ip" db:"ip"`
	Country   string    `json:"country" db:"country"`
	Device    string    `json:"device" db:"device"`
	Referrer  string    `json:"referrer" db:"referrer"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}
