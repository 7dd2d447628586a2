package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"shortlink/internal/database"
	"shortlink/internal/types"
)

const (
	anonymousLinkQuota = 50
	freeUserLinkQuota  = 200
	quotaWindow        = 30 * 24 * time.Hour

	qrImageSize = 400
)

type CreateLinkRequest struct {
	OriginalURL  string            `json:"original_url"`
	DomainID     int64             `json:"domain_id"`
	CustomSlug   string            `json:"custom_slug,omitempty"`
	ScheduleAt   *time.Time        `json:"schedule_at,omitempty"`
	ExpireAt     *time.Time        `json:"expire_at,omitempty"`
	GeoTargeting map[string]string `json:"geo_targeting,omitempty"`
}

type CreateLinkResponse struct {
	ID           int64  `json:"id"`
	ShortCode    string `json:"short_code"`
	FullShortURL string `json:"full_short_url"`
}

// LinkService creates links: slug allocation, domain ownership and
// entitlement checks, and the anonymous/free creation quotas.
type LinkService struct {
	store        LinkStore
	slugs        *SlugAllocator
	entitlements Entitlements
	rootDomain   string
	now          func() time.Time
}

func NewLinkService(store LinkStore, entitlements Entitlements, rootDomain string) *LinkService {
	return &LinkService{
		store:        store,
		slugs:        NewSlugAllocator(store, nil),
		entitlements: entitlements,
		rootDomain:   strings.ToLower(rootDomain),
		now:          time.Now,
	}
}

// Create validates the request, enforces quotas and entitlement, allocates
// a code and inserts the link. userID is nil for anonymous creators, who
// are rate-limited by creator IP instead.
func (s *LinkService) Create(ctx context.Context, req CreateLinkRequest, userID *int64, creatorIP string) (*CreateLinkResponse, error) {
	if err := validateDestination(req.OriginalURL); err != nil {
		return nil, err
	}

	domain, err := s.resolveDomain(ctx, req.DomainID)
	if err != nil {
		return nil, err
	}

	if domain.Type == types.DomainCustom {
		if userID == nil || domain.UserID == nil || *domain.UserID != *userID {
			return nil, fmt.Errorf("%w: unauthorized domain use", ErrForbidden)
		}
		paid, err := s.entitlements.PaidPlan(ctx, *userID)
		if err != nil {
			return nil, err
		}
		if !paid {
			return nil, fmt.Errorf("%w: plan upgrade required for custom domains", ErrForbidden)
		}
	}

	if err := s.checkQuota(ctx, userID, creatorIP); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		code, err := s.slugs.Allocate(ctx, domain.ID, req.CustomSlug)
		if err != nil {
			return nil, err
		}

		link := &types.Link{
			ShortCode:    code,
			DomainID:     domain.ID,
			OriginalURL:  req.OriginalURL,
			FullShortURL: s.fullShortURL(domain, code),
			State:        types.StateActive,
			ScheduleAt:   req.ScheduleAt,
			ExpireAt:     req.ExpireAt,
			GeoTargeting: req.GeoTargeting,
			UserID:       userID,
			CreatorIP:    creatorIP,
		}

		err = s.store.CreateLink(ctx, link)
		if err == nil {
			return &CreateLinkResponse{ID: link.ID, ShortCode: code, FullShortURL: link.FullShortURL}, nil
		}
		if errors.Is(err, database.ErrDuplicateCode) {
			if req.CustomSlug != "" {
				return nil, ErrSlugTaken
			}
			// Lost the race on a generated code; the unique constraint is
			// the arbiter, try again with a fresh one.
			continue
		}
		return nil, err
	}
	return nil, ErrSlugExhausted
}

// resolveDomain loads the requested domain, defaulting to the shared
// public domain when none is named.
func (s *LinkService) resolveDomain(ctx context.Context, domainID int64) (*types.Domain, error) {
	if domainID == 0 {
		domain, err := s.store.PublicDomain(ctx)
		if err != nil {
			return nil, err
		}
		if domain == nil {
			return nil, fmt.Errorf("%w: public domain is not configured", ErrNotFound)
		}
		return domain, nil
	}

	domain, err := s.store.DomainByID(ctx, domainID)
	if err != nil {
		return nil, err
	}
	if domain == nil {
		return nil, fmt.Errorf("%w: domain %d", ErrNotFound, domainID)
	}
	return domain, nil
}

// QRCode renders a PNG of the link's full short URL, owner-gated.
func (s *LinkService) QRCode(ctx context.Context, linkID, userID int64) ([]byte, error) {
	link, err := s.store.LinkByID(ctx, linkID, userID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("%w: link %d", ErrNotFound, linkID)
	}
	return qrcode.Encode(link.FullShortURL, qrcode.Medium, qrImageSize)
}

func (s *LinkService) checkQuota(ctx context.Context, userID *int64, creatorIP string) error {
	since := s.now().Add(-quotaWindow)

	if userID == nil {
		n, err := s.store.CountAnonymousLinksByIP(ctx, creatorIP, since)
		if err != nil {
			return err
		}
		if n >= anonymousLinkQuota {
			return fmt.Errorf("%w: anonymous limit of %d links reached", ErrForbidden, anonymousLinkQuota)
		}
		return nil
	}

	paid, err := s.entitlements.PaidPlan(ctx, *userID)
	if err != nil {
		return err
	}
	if paid {
		return nil
	}
	n, err := s.store.CountLinksByUser(ctx, *userID, since)
	if err != nil {
		return err
	}
	if n >= freeUserLinkQuota {
		return fmt.Errorf("%w: free plan limit of %d links per month reached", ErrForbidden, freeUserLinkQuota)
	}
	return nil
}

func (s *LinkService) fullShortURL(domain *types.Domain, code string) string {
	host := domain.Name + "." + s.rootDomain
	if domain.Type == types.DomainPublic {
		host = s.rootDomain
	}
	scheme := "https"
	if strings.Contains(s.rootDomain, "localhost") {
		scheme = "http"
	}
	return scheme + "://" + host + "/" + code
}

func validateDestination(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: original_url is required", ErrValidation)
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: original_url is not a valid URL", ErrValidation)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: original_url must start with http:// or https:// and contain a host", ErrValidation)
	}
	return nil
}
