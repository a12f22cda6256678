package auth

import (
	"fmt"
	"strconv"
	"time"

	"foodrescue/pkg/types"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

// Claims is the identity embedded in a session token.
type Claims struct {
	UserID int64
	Email  string
	Role   string
}

// TokenService issues and verifies HS256-signed session tokens.
// Verification is stateless; a token stays valid until expiry.
type TokenService struct {
	key []byte
	ttl time.Duration
}

func NewTokenService(key []byte, ttl time.Duration) *TokenService {
	return &TokenService{key: key, ttl: ttl}
}

func (s *TokenService) Issue(userID int64, email, role string) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		Subject(strconv.FormatInt(userID, 10)).
		Claim("email", email).
		Claim("role", role).
		IssuedAt(now).
		Expiration(now.Add(s.ttl)).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), s.key))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return string(signed), nil
}

func (s *TokenService) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, types.ErrMissingToken
	}

	token, err := jwt.Parse(
		[]byte(raw),
		jwt.WithKey(jwa.HS256(), s.key),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, types.ErrInvalidToken
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, types.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, types.ErrInvalidToken
	}

	claims := &Claims{UserID: userID}

	// Private claims; absent values leave the zero string.
	_ = token.Get("email", &claims.Email)
	_ = token.Get("role", &claims.Role)

	return claims, nil
}
