package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"health-predict-backend/config"
	"health-predict-backend/pkg/jwt"

	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwt.JWTService {
	t.Helper()
	return jwt.NewJWTService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(t))

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Access token required")
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(t))

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	for _, header := range []string{
		"Bearer",
		"Bearer ",
		"Basic abc123",
		"token-without-scheme",
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	svc := newTestJWTService(t)
	m := NewAuthMiddleware(svc)

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	token, err := svc.Generate("user-123", "alice@example.com", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token[:len(token)-2]+"xx")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// A token that is present but fails verification is 403, not 401.
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthenticateExpiredToken(t *testing.T) {
	expired := jwt.NewJWTService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: -time.Minute,
	})
	m := NewAuthMiddleware(newTestJWTService(t))

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	token, err := expired.Generate("user-123", "alice@example.com", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthenticateValidToken(t *testing.T) {
	svc := newTestJWTService(t)
	m := NewAuthMiddleware(svc)

	var gotID, gotEmail, gotRole string
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserIDFromContext(r.Context())
		gotEmail, _ = GetUserEmailFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	token, err := svc.Generate("user-123", "alice@example.com", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-123", gotID)
	require.Equal(t, "alice@example.com", gotEmail)
	require.Empty(t, gotRole)
}

func TestRequireDoctor(t *testing.T) {
	svc := newTestJWTService(t)
	m := NewAuthMiddleware(svc)

	handler := m.Authenticate(RequireDoctor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	patientToken, err := svc.Generate("user-123", "alice@example.com", "")
	require.NoError(t, err)
	doctorToken, err := svc.Generate("1", "doctor@example.com", jwt.RoleDoctor)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/doctor/alerts", nil)
	req.Header.Set("Authorization", "Bearer "+patientToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Doctors only")

	req = httptest.NewRequest(http.MethodGet, "/api/doctor/alerts", nil)
	req.Header.Set("Authorization", "Bearer "+doctorToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
