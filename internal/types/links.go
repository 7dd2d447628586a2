package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StateActive  = "active"
	StateExpired = "expired"
)

const (
	DomainPublic = "public"
	DomainCustom = "custom"
)

// Domain is a tenant scope for short codes. Exactly one row with
// Type = "public" exists per deployment; custom domains belong to a user.
type Domain struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Type   string `json:"type" db:"type"`
	UserID *int64 `json:"user_id,omitempty" db:"user_id"`
}

// GeoTargeting maps an ISO country code to an override destination URL.
// Stored as JSONB.
type GeoTargeting map[string]string

func (g GeoTargeting) Value() (driver.Value, error) {
	if len(g) == 0 {
		return nil, nil
	}
	return json.Marshal(g)
}

func (g *GeoTargeting) Scan(src any) error {
	if src == nil {
		*g = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("geo targeting: cannot scan %T", src)
	}
	return json.Unmarshal(raw, g)
}

// Link is a short code bound to a destination URL. Codes are unique per
// domain, never globally. State caches the time-window evaluation for
// listing; resolution re-derives it from ScheduleAt/ExpireAt every time.
type Link struct {
	ID           int64        `json:"id" db:"id"`
	ShortCode    string       `json:"short_code" db:"short_code"`
	DomainID     int64        `json:"domain_id" db:"domain_id"`
	OriginalURL  string       `json:"original_url" db:"original_url"`
	FullShortURL string       `json:"full_short_url" db:"full_short_url"`
	State        string       `json:"state" db:"state"`
	ScheduleAt   *time.Time   `json:"schedule_at,omitempty" db:"schedule_at"`
	ExpireAt     *time.Time   `json:"expire_at,omitempty" db:"expire_at"`
	GeoTargeting GeoTargeting `json:"geo_targeting,omitempty" db:"geo_targeting"`
	ClickCount   int64        `json:"click_count" db:"click_count"`
	UserID       *int64       `json:"user_id,omitempty" db:"user_id"`
	CreatorIP    string       `json:"-" db:"creator_ip"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}

// LinkWithDomain carries the owning domain's name for tenant matching.
type LinkWithDomain struct {
	Link
	DomainName string `json:"domain_name" db:"domain_name"`
}
