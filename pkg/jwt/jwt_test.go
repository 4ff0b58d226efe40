package jwt

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"health-predict-backend/config"

	"github.com/stretchr/testify/require"
)

func newTestService(expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: expiry,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	token, err := svc.Generate("user-123", "alice@example.com", "")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Empty(t, claims.Role)

	issued := claims.IssuedAt.Time
	expires := claims.ExpiresAt.Time
	require.WithinDuration(t, issued.Add(24*time.Hour), expires, time.Second)
}

func TestGenerateDoctorRole(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	token, err := svc.Generate("1", "doctor@example.com", RoleDoctor)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	require.Equal(t, RoleDoctor, claims.Role)
}

func TestPatientTokenOmitsRoleClaim(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	token, err := svc.Generate("user-123", "alice@example.com", "")
	require.NoError(t, err)

	// The role claim must be absent from the payload, not present and empty.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	require.NotContains(t, decodeSegment(t, parts[1]), `"role"`)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.Generate("user-123", "alice@example.com", "")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
}

func TestValidateTamperedToken(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	token, err := svc.Generate("user-123", "alice@example.com", "")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Validate(tampered)
	require.Error(t, err)
}

func TestValidateWrongSecret(t *testing.T) {
	svc := newTestService(24 * time.Hour)
	other := NewJWTService(config.JWTConfig{Secret: "different-secret", Expiry: 24 * time.Hour})

	token, err := svc.Generate("user-123", "alice@example.com", "")
	require.NoError(t, err)

	_, err = other.Validate(token)
	require.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	_, err := svc.Validate("not-a-token")
	require.Error(t, err)
}

func decodeSegment(t *testing.T, seg string) string {
	t.Helper()
	decoded, err := base64.RawURLEncoding.DecodeString(seg)
	require.NoError(t, err)
	return string(decoded)
}
