package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/service"
	"shortlink/internal/service/mocks"
	"shortlink/internal/types"
)

const rootDomain = "sho.rt"

func linkOn(domain string, id int64, dest string) types.LinkWithDomain {
	return types.LinkWithDomain{
		Link:       types.Link{ID: id, ShortCode: "promo", OriginalURL: dest, State: types.StateActive},
		DomainName: domain,
	}
}

func TestResolveTenantIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockLinkStore(ctrl)
	r := service.NewResolver(store, rootDomain)
	now := time.Now()

	// The same code lives on two domains; the host decides which wins.
	links := []types.LinkWithDomain{
		linkOn("acme", 1, "https://acme.example/a"),
		linkOn("globex", 2, "https://globex.example/b"),
	}
	store.EXPECT().LinksByShortCode(gomock.Any(), "promo").Return(links, nil).Times(3)

	dest, err := r.Resolve(context.Background(), "promo", "acme.sho.rt", "DE", now)
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example/a", dest)

	dest, err = r.Resolve(context.Background(), "promo", "www.globex.sho.rt", "DE", now)
	require.NoError(t, err)
	assert.Equal(t, "https://globex.example/b", dest)

	_, err = r.Resolve(context.Background(), "promo", "initech.sho.rt", "DE", now)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestResolvePublicDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockLinkStore(ctrl)
	r := service.NewResolver(store, rootDomain)

	store.EXPECT().LinksByShortCode(gomock.Any(), "promo").
		Return([]types.LinkWithDomain{linkOn("public", 1, "https://example.com")}, nil).Times(2)

	dest, err := r.Resolve(context.Background(), "promo", "sho.rt", "US", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", dest)

	// www. on the bare root still maps to the public tenant.
	dest, err = r.Resolve(context.Background(), "promo", "www.sho.rt", "US", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", dest)
}

func TestResolveTimeWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name       string
		scheduleAt *time.Time
		expireAt   *time.Time
		wantErr    error
		wantMsg    string
	}{
		{"inside window", &past, &future, nil, ""},
		{"both unset", nil, nil, nil, ""},
		{"not started", &future, nil, service.ErrForbidden, "link has not started yet"},
		{"expired", nil, &past, service.ErrForbidden, "link has expired"},
		{"expired wins when both violated", &future, &past, service.ErrForbidden, "link has expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mocks.NewMockLinkStore(ctrl)
			r := service.NewResolver(store, rootDomain)

			link := linkOn("acme", 1, "https://example.com")
			link.ScheduleAt = tt.scheduleAt
			link.ExpireAt = tt.expireAt
			store.EXPECT().LinksByShortCode(gomock.Any(), "promo").
				Return([]types.LinkWithDomain{link}, nil)

			dest, err := r.Resolve(context.Background(), "promo", "acme.sho.rt", "US", now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://example.com", dest)
		})
	}
}

// The persisted state column is a cache; resolution trusts the timestamps.
// An expired-but-unswept link must not resolve, and an active-again link
// must not be blocked by a stale column.
func TestResolveIgnoresStoredState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockLinkStore(ctrl)
	r := service.NewResolver(store, rootDomain)

	now := time.Now()
	past := now.Add(-time.Minute)
	link := linkOn("acme", 1, "https://example.com")
	link.State = types.StateActive // sweeper has not run yet
	link.ExpireAt = &past
	store.EXPECT().LinksByShortCode(gomock.Any(), "promo").
		Return([]types.LinkWithDomain{link}, nil)

	_, err := r.Resolve(context.Background(), "promo", "acme.sho.rt", "US", now)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestResolveGeoOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockLinkStore(ctrl)
	r := service.NewResolver(store, rootDomain)

	link := linkOn("acme", 1, "https://example.com/default")
	link.GeoTargeting = types.GeoTargeting{"US": "https://example.com/us"}
	store.EXPECT().LinksByShortCode(gomock.Any(), "promo").
		Return([]types.LinkWithDomain{link}, nil).Times(3)

	dest, err := r.Resolve(context.Background(), "promo", "acme.sho.rt", "US", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/us", dest)

	dest, err = r.Resolve(context.Background(), "promo", "acme.sho.rt", "FR", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/default", dest)

	dest, err = r.Resolve(context.Background(), "promo", "acme.sho.rt", "Unknown", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/default", dest)
}

func TestResolveErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockLinkStore(ctrl)
	r := service.NewResolver(store, rootDomain)

	t.Run("no link anywhere", func(t *testing.T) {
		store.EXPECT().LinksByShortCode(gomock.Any(), "ghost").Return(nil, nil)
		_, err := r.Resolve(context.Background(), "ghost", "acme.sho.rt", "US", time.Now())
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("empty host", func(t *testing.T) {
		_, err := r.Resolve(context.Background(), "promo", "", "US", time.Now())
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}
