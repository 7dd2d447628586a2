package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/service"
	"shortlink/internal/service/mocks"
	"shortlink/internal/types"
)

type stubLocator struct{ country string }

func (s stubLocator) Country(string) string { return s.country }

type serverFixture struct {
	store  *mocks.MockLinkStore
	clicks *mocks.MockClickStore
	queue  *mocks.MockQueue
	ent    *mocks.MockEntitlements
	srv    *service.Server
}

func newServerFixture(t *testing.T, country string) *serverFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &serverFixture{
		store:  mocks.NewMockLinkStore(ctrl),
		clicks: mocks.NewMockClickStore(ctrl),
		queue:  mocks.NewMockQueue(ctrl),
		ent:    mocks.NewMockEntitlements(ctrl),
	}
	f.srv = service.NewServer(
		"8080",
		service.NewResolver(f.store, "sho.rt"),
		service.NewIngestor(f.store, f.queue),
		service.NewLinkService(f.store, f.ent, "sho.rt"),
		service.NewAnalyticsService(f.store, f.clicks),
		stubLocator{country: country},
		service.HeaderAuth{},
	)
	return f
}

func activeLink() types.LinkWithDomain {
	return types.LinkWithDomain{
		Link: types.Link{
			ID:          7,
			ShortCode:   "promo",
			OriginalURL: "https://example.com/landing",
			State:       types.StateActive,
		},
		DomainName: types.DomainPublic,
	}
}

func TestServerRedirect(t *testing.T) {
	f := newServerFixture(t, "US")

	f.store.EXPECT().LinksByShortCode(gomock.Any(), "promo").
		Return([]types.LinkWithDomain{activeLink()}, nil)
	// The click is ingested on a detached goroutine; it may or may not run
	// before the test finishes, so these are AnyTimes.
	f.store.EXPECT().LinkBySlug(gomock.Any(), "promo").
		Return(&types.Link{ID: 7, ShortCode: "promo"}, nil).AnyTimes()
	f.queue.EXPECT().PushTail(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := httptest.NewRequest(http.MethodGet, "http://sho.rt/promo", nil)
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/landing", rec.Header().Get("Location"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	// Give the detached ingest a moment so the controller sees its calls.
	time.Sleep(20 * time.Millisecond)
}

func TestServerRedirectGeoOverride(t *testing.T) {
	f := newServerFixture(t, "DE")

	link := activeLink()
	link.GeoTargeting = types.GeoTargeting{"DE": "https://example.de/landing"}
	f.store.EXPECT().LinksByShortCode(gomock.Any(), "promo").
		Return([]types.LinkWithDomain{link}, nil)
	f.store.EXPECT().LinkBySlug(gomock.Any(), "promo").
		Return(&link.Link, nil).AnyTimes()
	f.queue.EXPECT().PushTail(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := httptest.NewRequest(http.MethodGet, "http://sho.rt/promo", nil)
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.de/landing", rec.Header().Get("Location"))
	time.Sleep(20 * time.Millisecond)
}

func TestServerRedirectUnknownSlug(t *testing.T) {
	f := newServerFixture(t, "US")

	f.store.EXPECT().LinksByShortCode(gomock.Any(), "nope").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "http://sho.rt/nope", nil)
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServerRedirectExpiredLink(t *testing.T) {
	f := newServerFixture(t, "US")

	past := time.Now().Add(-time.Hour)
	link := activeLink()
	link.ExpireAt = &past
	f.store.EXPECT().LinksByShortCode(gomock.Any(), "promo").
		Return([]types.LinkWithDomain{link}, nil)

	req := httptest.NewRequest(http.MethodGet, "http://sho.rt/promo", nil)
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServerLogClick(t *testing.T) {
	f := newServerFixture(t, "FR")

	f.store.EXPECT().LinkBySlug(gomock.Any(), "promo").
		Return(&types.Link{ID: 7, ShortCode: "promo"}, nil)
	f.queue.EXPECT().PushTail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload []byte) error {
			var event types.ClickEvent
			require.NoError(t, json.Unmarshal(payload, &event))
			assert.Equal(t, int64(7), event.LinkID)
			assert.Equal(t, "FR", event.Country)
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "http://sho.rt/api/analytics/click",
		strings.NewReader(`{"slug":"promo"}`))
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var result service.IngestResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Queued)
}

func TestServerLogClickMissingSlug(t *testing.T) {
	f := newServerFixture(t, "US")

	req := httptest.NewRequest(http.MethodPost, "http://sho.rt/api/analytics/click",
		strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServerCreateLink(t *testing.T) {
	f := newServerFixture(t, "US")

	f.store.EXPECT().DomainByID(gomock.Any(), int64(1)).
		Return(&types.Domain{ID: 1, Name: "public", Type: types.DomainPublic}, nil)
	f.store.EXPECT().CountAnonymousLinksByIP(gomock.Any(), "203.0.113.9", gomock.Any()).Return(0, nil)
	f.store.EXPECT().LinkCodeExists(gomock.Any(), int64(1), gomock.Any()).Return(false, nil)
	f.store.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "http://sho.rt/api/links",
		strings.NewReader(`{"original_url":"https://example.com/long","domain_id":1}`))
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp service.CreateLinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.ShortCode, 5)
	assert.Equal(t, "https://sho.rt/"+resp.ShortCode, resp.FullShortURL)
}

func TestServerCreateLinkSlugConflict(t *testing.T) {
	f := newServerFixture(t, "US")

	f.store.EXPECT().DomainByID(gomock.Any(), int64(1)).
		Return(&types.Domain{ID: 1, Name: "public", Type: types.DomainPublic}, nil)
	f.store.EXPECT().CountAnonymousLinksByIP(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	f.store.EXPECT().LinkCodeExists(gomock.Any(), int64(1), "taken").Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "http://sho.rt/api/links",
		strings.NewReader(`{"original_url":"https://example.com","domain_id":1,"custom_slug":"taken"}`))
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServerAnalyticsRequiresAuth(t *testing.T) {
	f := newServerFixture(t, "US")

	req := httptest.NewRequest(http.MethodGet, "http://sho.rt/api/analytics/7", nil)
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServerAnalytics(t *testing.T) {
	f := newServerFixture(t, "US")

	f.store.EXPECT().LinkByID(gomock.Any(), int64(7), int64(10)).
		Return(&types.LinkWithDomain{Link: types.Link{ID: 7, ShortCode: "promo"}}, nil)
	f.clicks.EXPECT().ClicksByLink(gomock.Any(), int64(7)).
		Return([]types.ClickRecord{{LinkID: 7, Country: "US", Device: "mobile", Timestamp: time.Now()}}, nil)

	req := httptest.NewRequest(http.MethodGet, "http://sho.rt/api/analytics/7", nil)
	req.Header.Set("X-User-ID", "10")
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var summary service.LinkAnalytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, int64(1), summary.TotalClicks)
}

func TestServerQRCode(t *testing.T) {
	f := newServerFixture(t, "US")

	f.store.EXPECT().LinkByID(gomock.Any(), int64(7), int64(10)).
		Return(&types.LinkWithDomain{Link: types.Link{ID: 7, FullShortURL: "https://sho.rt/promo"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "http://sho.rt/api/links/7/qr", nil)
	req.Header.Set("X-User-ID", "10")
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}
