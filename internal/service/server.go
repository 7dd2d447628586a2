package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mileusna/useragent"
)

const ingestTimeout = 5 * time.Second

// Authenticator is the authentication collaborator: it yields the
// authenticated user id, or false for the anonymous path. Verification
// itself happens upstream.
type Authenticator interface {
	UserID(r *http.Request) (int64, bool)
}

// HeaderAuth trusts the X-User-ID header injected by the gateway after it
// has verified the caller.
type HeaderAuth struct{}

func (HeaderAuth) UserID(r *http.Request) (int64, bool) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type Server struct {
	port      string
	resolver  *Resolver
	ingestor  *Ingestor
	links     *LinkService
	analytics *AnalyticsService
	locator   CountryLocator
	auth      Authenticator
}

func NewServer(port string, resolver *Resolver, ingestor *Ingestor, links *LinkService, analytics *AnalyticsService, locator CountryLocator, auth Authenticator) *Server {
	return &Server{
		port:      port,
		resolver:  resolver,
		ingestor:  ingestor,
		links:     links,
		analytics: analytics,
		locator:   locator,
		auth:      auth,
	}
}

// Router builds the HTTP routing table. Split out from Start so tests can
// drive handlers through httptest.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestLogger)
	r.Use(geoDetect(s.locator))

	r.Get("/health", s.handleHealth)
	r.Post("/api/links", s.handleCreateLink)
	r.Get("/api/links/{linkID}/qr", s.handleQRCode)
	r.Get("/api/analytics/{linkID}", s.handleAnalytics)
	r.Post("/api/analytics/click", s.handleLogClick)
	r.Get("/{slug}", s.handleRedirect)
	return r
}

func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Router(),
	}
	errChan := make(chan error, 1)
	go func() { errChan <- srv.ListenAndServe() }()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleRedirect is the hot path: one resolver call, then a 302. The click
// is handed to the ingestor on a detached goroutine so queue or store
// hiccups never delay the redirect.
func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	country := countryFrom(r.Context())

	dest, err := s.resolver.Resolve(r.Context(), slug, r.Host, country, time.Now())
	if err != nil {
		s.writeError(w, err)
		return
	}

	click := ClickRequest{
		Slug:     slug,
		IP:       clientIPFrom(r.Context()),
		Device:   deviceClass(r.UserAgent()),
		Country:  country,
		Referrer: referrerOrDirect(r),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
		defer cancel()
		s.ingestor.Ingest(ctx, click)
	}()

	http.Redirect(w, r, dest, http.StatusFound)
}

func (s *Server) handleLogClick(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Slug == "" {
		http.Error(w, "slug is required", http.StatusBadRequest)
		return
	}

	result := s.ingestor.Ingest(r.Context(), ClickRequest{
		Slug:     body.Slug,
		IP:       clientIPFrom(r.Context()),
		Device:   deviceClass(r.UserAgent()),
		Country:  countryFrom(r.Context()),
		Referrer: referrerOrDirect(r),
	})
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var userID *int64
	if id, ok := s.auth.UserID(r); ok {
		userID = &id
	}

	resp, err := s.links.Create(r.Context(), req, userID, clientIPFrom(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.auth.UserID(r)
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}
	linkID, err := strconv.ParseInt(chi.URLParam(r, "linkID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid link id", http.StatusBadRequest)
		return
	}

	summary, err := s.analytics.Summary(r.Context(), linkID, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleQRCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.auth.UserID(r)
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}
	linkID, err := strconv.ParseInt(chi.URLParam(r, "linkID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid link id", http.StatusBadRequest)
		return
	}

	png, err := s.links.QRCode(r.Context(), linkID, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrSlugTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func deviceClass(ua string) string {
	parsed := useragent.Parse(ua)
	switch {
	case parsed.Bot:
		return "bot"
	case parsed.Mobile:
		return "mobile"
	case parsed.Tablet:
		return "tablet"
	default:
		return "desktop"
	}
}

func referrerOrDirect(r *http.Request) string {
	if ref := r.Referer(); ref != "" {
		return ref
	}
	return "direct"
}
