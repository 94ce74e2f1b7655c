package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// ErrInvalidToken is returned for every token that fails verification.
var ErrInvalidToken = apperrors.ErrTokenInvalid

// Accepted Authorization header prefixes. The colon form is what existing
// clients send.
const (
	legacyBearerPrefix = "Bearer: "
	bearerPrefix       = "Bearer "
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey   string
	TokenIssuer string
	// TokenTTL is the token lifetime. Zero issues tokens without expiry.
	TokenTTL time.Duration
}

// JWTService issues and verifies admin identity tokens.
type JWTService struct {
	config JWTConfig
	now    func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
		now:    time.Now,
	}
}

// Claims defines JWT token content
type Claims struct {
	AdminID int64 `json:"id"`
	jwt.RegisteredClaims
}

// Issue creates a signed token bound to adminID.
func (s *JWTService) Issue(adminID int64) (string, error) {
	now := s.now()

	claims := &Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   s.config.TokenIssuer,
			Subject:  strconv.FormatInt(adminID, 10),
			ID:       uuid.New().String(),
		},
	}
	if s.config.TokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.config.TokenTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature (and expiry, when present) of tokenString and
// returns the admin id it was issued for.
func (s *JWTService) Verify(tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, ErrInvalidToken
	}

	opts := []jwt.ParserOption{jwt.WithTimeFunc(s.now)}
	if s.config.TokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.TokenIssuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AdminID <= 0 {
		return 0, ErrInvalidToken
	}
	return claims.AdminID, nil
}

// ExtractBearerToken strips the bearer prefix from an Authorization header.
// Headers without a known prefix are returned unchanged.
func ExtractBearerToken(authHeader string) string {
	authHeader = strings.TrimSpace(authHeader)
	switch {
	case strings.HasPrefix(authHeader, legacyBearerPrefix):
		return strings.TrimSpace(strings.TrimPrefix(authHeader, legacyBearerPrefix))
	case strings.HasPrefix(authHeader, bearerPrefix):
		return strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	default:
		return authHeader
	}
}
