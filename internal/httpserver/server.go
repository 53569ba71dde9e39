// apps/solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/dictionary".
//   - Round endpoints (optional auth): mounted under /rounds (routes_rounds.go).
//   - Auth + stats endpoints: /auth/*, /stats/me (routes_auth.go).
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - Guests get a stable anonymous cookie so their finished rounds can be
//     attributed, and claimed when they later sign up or log in.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/wordle/apps/solver/internal/auth"
	"github.com/robalobadob/wordle/apps/solver/internal/history"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Server bundles the router with the round store, dictionary and persistence.
type Server struct {
	r       *chi.Mux
	store   store.Store
	dict    words.Dictionary
	auth    *auth.Service
	history *history.Store
	secure  bool
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict words.Dictionary, authSvc *auth.Service, hist *history.Store) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		dict:    dict,
		auth:    authSvc,
		history: hist,
		secure:  os.Getenv("NODE_ENV") == "production",
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /rounds","POST /rounds/{id}/turns","GET /rounds/{id}","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/dictionary", func(w http.ResponseWriter, r *http.Request) {
		entries, candidates := s.dict.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"entries": entries, "candidates": candidates})
	})

	// Rounds: optional auth, guests can solve
	s.mountRounds(s.r.With(s.auth.Optional()))

	// Auth + stats
	s.mountAuth()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------- helpers -----------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

const anonCookieName = "solver_anon"

// ensureAnonID returns an existing anon cookie or sets a new one.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := auth.GenID()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: auth.SameSite(s.secure),
		Expires:  time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// ownerID is the authenticated user's ID, or the guest's anonymous ID.
func (s *Server) ownerID(w http.ResponseWriter, r *http.Request) string {
	if p := auth.FromContext(r.Context()); p != nil {
		return p.ID
	}
	return s.ensureAnonID(w, r)
}
