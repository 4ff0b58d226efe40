package jwt

import (
	"errors"
	"time"

	"health-predict-backend/config"

	"github.com/golang-jwt/jwt/v5"
)

// RoleDoctor is the only role claim this service ever mints. Patient tokens
// carry no role claim at all; consumers must treat an absent role as
// "not a doctor".
const RoleDoctor = "doctor"

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 bearer tokens. The signing secret is
// process-wide configuration, loaded once at startup; rotating it invalidates
// every outstanding token. Tokens are stateless: there is no revocation, so a
// leaked token stays valid until its expiry.
type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// Generate mints a token for the given subject. Pass role="" for patients;
// the claim is then omitted from the payload entirely.
func (s *JWTService) Generate(userID, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

// Validate checks signature integrity, then expiry. Expired and tampered
// tokens deliberately collapse into the same error: callers surface both as
// a single "invalid or expired" failure.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetExpiry() time.Duration {
	return s.config.Expiry
}
