// apps/solver/internal/httpserver/routes_auth.go
//
// Account routes. Accounts are optional: they only attribute finished rounds.
//   - POST /auth/signup, /auth/login, /auth/logout
//   - GET  /auth/me       (require auth)
//   - GET  /stats/me      (require auth) aggregate outcomes
//   - GET  /history/mine  (require auth) latest finished rounds

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/auth"
)

// credentialsReq is the payload for signup and login.
type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// mountAuth registers authentication + gated routes.
func (s *Server) mountAuth() {
	s.r.Post("/auth/signup", s.handleSignup)
	s.r.Post("/auth/login", s.handleLogin)
	s.r.Post("/auth/logout", s.handleLogout)

	gated := s.r.With(s.auth.Required())
	gated.Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, auth.FromContext(r.Context()))
	})
	gated.Get("/stats/me", s.handleStats)
	gated.Get("/history/mine", s.handleHistory)
}

// handleSignup creates a user, sets the auth cookie, and claims guest history.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	u, err := s.auth.Signup(r.Context(), body.Username, body.Password)
	switch {
	case errors.Is(err, auth.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "Username taken")
		return
	case errors.Is(err, auth.ErrInvalidSignup):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Error().Err(err).Msg("signup")
		writeError(w, http.StatusInternalServerError, "signup_failed")
		return
	}
	if !s.startSession(w, r, u) {
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// handleLogin authenticates a user, sets the cookie, and claims guest history.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	u, err := s.auth.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			log.Error().Err(err).Msg("login")
		}
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if !s.startSession(w, r, u) {
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// handleLogout clears the auth cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// startSession signs a token, sets the cookie and moves any guest rounds to u.
// It reports false after writing an error response.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, u *auth.User) bool {
	tok, exp, err := s.auth.SignToken(u)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return false
	}
	s.auth.SetCookie(w, tok, exp)
	if c, err := r.Cookie(anonCookieName); err == nil && s.history != nil {
		if n, err := s.history.Claim(r.Context(), c.Value, u.ID); err != nil {
			log.Warn().Err(err).Msg("claim anon rounds")
		} else if n > 0 {
			log.Info().Str("user", u.ID).Int64("rounds", n).Msg("claimed anon rounds")
		}
	}
	return true
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	me := auth.FromContext(r.Context())
	st, err := s.history.Stats(r.Context(), me.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	me := auth.FromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	rows, err := s.history.Recent(r.Context(), me.ID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
