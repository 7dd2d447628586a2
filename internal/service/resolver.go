package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shortlink/internal/types"
)

// Resolver maps a (request host, short code) pair to a destination URL.
// The read path performs a single joined lookup and no writes; click
// recording is dispatched separately so redirect latency never waits on
// storage writes.
type Resolver struct {
	store      LinkStore
	rootDomain string
}

func NewResolver(store LinkStore, rootDomain string) *Resolver {
	return &Resolver{store: store, rootDomain: strings.ToLower(rootDomain)}
}

// tenantFromHost derives the tenant domain name. A subdomain of the root
// domain names a custom tenant, the bare root is the public tenant, and
// anything else is left as-is so it simply fails to match a tenant.
func (r *Resolver) tenantFromHost(host string) (string, error) {
	h := strings.ToLower(strings.TrimSpace(host))
	h = strings.TrimPrefix(h, "www.")
	if h == "" {
		return "", fmt.Errorf("%w: missing request host", ErrValidation)
	}
	switch {
	case h == r.rootDomain:
		return types.DomainPublic, nil
	case strings.HasSuffix(h, "."+r.rootDomain):
		return strings.TrimSuffix(h, "."+r.rootDomain), nil
	default:
		return h, nil
	}
}

// Resolve returns the effective destination for slug under host, as seen
// at now by a requester in country. The stored state column is never
// consulted; the time window is re-evaluated on every request.
func (r *Resolver) Resolve(ctx context.Context, slug, host, country string, now time.Time) (string, error) {
	tenant, err := r.tenantFromHost(host)
	if err != nil {
		return "", err
	}

	links, err := r.store.LinksByShortCode(ctx, slug)
	if err != nil {
		return "", err
	}
	if len(links) == 0 {
		return "", fmt.Errorf("%w: no link for code %q", ErrNotFound, slug)
	}

	var link *types.LinkWithDomain
	for i := range links {
		if strings.EqualFold(links[i].DomainName, tenant) {
			link = &links[i]
			break
		}
	}
	if link == nil {
		return "", fmt.Errorf("%w: no link for code %q on domain %q", ErrNotFound, slug, tenant)
	}

	switch LinkWindow(link.ScheduleAt, link.ExpireAt, now) {
	case WindowExpired:
		return "", fmt.Errorf("%w: link has expired", ErrForbidden)
	case WindowPending:
		return "", fmt.Errorf("%w: link has not started yet", ErrForbidden)
	}

	if dest, ok := link.GeoTargeting[country]; ok && dest != "" {
		return dest, nil
	}
	return link.OriginalURL, nil
}
