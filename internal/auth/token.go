// apps/solver/internal/auth/token.go
//
// JWT + cookie handling and the HTTP middleware built on them.
//   - Tokens are HS256 with id/username claims and a configurable expiry.
//   - Tokens are read from "Authorization: Bearer" first, then the cookie.
//   - Optional decorates the request context when a valid token is present;
//     Required rejects the request with 401 otherwise.

package auth

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidToken = errors.New("invalid token")

// Config holds the auth settings, usually read from the environment.
type Config struct {
	Secret     []byte
	TTL        time.Duration
	CookieName string
	Secure     bool // production: Secure + SameSite=None cookies
	BcryptCost int
}

// ConfigFromEnv reads JWT_SECRET, JWT_EXPIRES_DAYS (default 14), COOKIE_NAME
// and NODE_ENV.
func ConfigFromEnv() Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev_secret_change_me"
	}
	days := 14
	if v := os.Getenv("JWT_EXPIRES_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			days = n
		}
	}
	name := os.Getenv("COOKIE_NAME")
	if name == "" {
		name = "solver_token"
	}
	return Config{
		Secret:     []byte(secret),
		TTL:        time.Duration(days) * 24 * time.Hour,
		CookieName: name,
		Secure:     os.Getenv("NODE_ENV") == "production",
		BcryptCost: bcrypt.DefaultCost,
	}
}

// Service bundles the user table and token settings.
type Service struct {
	db  *sql.DB
	cfg Config
}

func NewService(db *sql.DB, cfg Config) *Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{db: db, cfg: cfg}
}

// Principal is placed into the request context by the middleware.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// SignToken creates an HS256 JWT for u and returns it with its expiry.
func (s *Service) SignToken(u *User) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.TTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       u.ID,
		"username": u.Username,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	})
	ss, err := t.SignedString(s.cfg.Secret)
	return ss, exp, err
}

// ParseToken verifies a token and extracts its principal.
func (s *Service) ParseToken(tok string) (*Principal, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return s.cfg.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if id == "" || username == "" {
		return nil, ErrInvalidToken
	}
	return &Principal{ID: id, Username: username}, nil
}

// SetCookie writes the auth token cookie.
func (s *Service) SetCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, s.cookie(token, exp, 0))
}

// ClearCookie deletes the auth token cookie.
func (s *Service) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie("", time.Time{}, -1))
}

func (s *Service) cookie(value string, exp time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: SameSite(s.cfg.Secure),
		Expires:  exp,
		MaxAge:   maxAge,
	}
}

// SameSite picks None for secure (cross-site) deployments, Lax otherwise.
func SameSite(secure bool) http.SameSite {
	if secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// tokenFromRequest extracts a bearer token from the Authorization header or auth cookie.
func (s *Service) tokenFromRequest(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// authenticate resolves the request's principal and makes sure the user
// still exists.
func (s *Service) authenticate(r *http.Request) (*Principal, error) {
	tok := s.tokenFromRequest(r)
	if tok == "" {
		return nil, ErrInvalidToken
	}
	p, err := s.ParseToken(tok)
	if err != nil {
		return nil, err
	}
	if _, err := s.FindByID(r.Context(), p.ID); err != nil {
		return nil, ErrInvalidToken
	}
	return p, nil
}

type ctxUserKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ctxUserKey{}, p)
}

// FromContext returns the authenticated principal, or nil for guests.
func FromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(ctxUserKey{}).(*Principal)
	return p
}

// Optional decorates requests with the principal if a valid token is present.
// It never rejects.
func (s *Service) Optional() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p, err := s.authenticate(r); err == nil {
				r = r.WithContext(WithPrincipal(r.Context(), p))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Required enforces a valid token and injects the principal.
func (s *Service) Required() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.tokenFromRequest(r) == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			p, err := s.authenticate(r)
			if err != nil {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}
