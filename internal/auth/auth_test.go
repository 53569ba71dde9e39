package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/wordle/apps/solver/internal/db"
)

func newService(t *testing.T) *Service {
	t.Helper()
	sqlDB, err := db.OpenMigrated(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewService(sqlDB, Config{
		Secret:     []byte("test-secret"),
		TTL:        time.Hour,
		CookieName: "solver_token",
		BcryptCost: bcrypt.MinCost,
	})
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	u, err := s.Signup(ctx, "  alice_1 ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "alice_1", u.Username)
	assert.Len(t, u.ID, 22)
	assert.NotEqual(t, "correct horse", u.PasswordHash)

	_, err = s.Signup(ctx, "ALICE_1", "another password")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	got, err := s.Login(ctx, "Alice_1", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Login(ctx, "alice_1", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(ctx, "bob", "whatever1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	byID, err := s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Username, byID.Username)
	assert.True(t, u.CreatedAt.Equal(byID.CreatedAt))
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"ok", "carol", "longenough", false},
		{"short username", "ab", "longenough", true},
		{"bad chars", "car-ol", "longenough", true},
		{"short password", "carol", "short", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSignup(tt.username, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSignup)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToken(t *testing.T) {
	s := newService(t)
	u := &User{ID: "id-1", Username: "dave"}

	tok, exp, err := s.SignToken(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	p, err := s.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, &Principal{ID: "id-1", Username: "dave"}, p)

	_, err = s.ParseToken(tok + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewService(nil, Config{Secret: []byte("other"), TTL: time.Hour})
	_, err = other.ParseToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	u, err := s.Signup(ctx, "erin", "password123")
	require.NoError(t, err)
	tok, _, err := s.SignToken(u)
	require.NoError(t, err)

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := FromContext(r.Context()); p != nil {
			_, _ = w.Write([]byte(p.Username))
			return
		}
		_, _ = w.Write([]byte("guest"))
	})

	t.Run("optional guest", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.Optional()(echo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "guest", rec.Body.String())
	})

	t.Run("optional bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		s.Optional()(echo).ServeHTTP(rec, req)
		assert.Equal(t, "erin", rec.Body.String())
	})

	t.Run("required cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "solver_token", Value: tok})
		rec := httptest.NewRecorder()
		s.Required()(echo).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "erin", rec.Body.String())
	})

	t.Run("required missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.Required()(echo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("required unknown user", func(t *testing.T) {
		ghost, _, err := s.SignToken(&User{ID: "ghost", Username: "ghost"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+ghost)
		rec := httptest.NewRecorder()
		s.Required()(echo).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCookies(t *testing.T) {
	s := newService(t)
	rec := httptest.NewRecorder()
	s.SetCookie(rec, "tok", time.Now().Add(time.Hour))
	s.ClearCookie(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, "", cookies[1].Value)
	assert.Less(t, cookies[1].MaxAge, 0)
}
