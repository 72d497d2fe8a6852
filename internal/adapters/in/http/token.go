package http

import (
	"errors"
	"time"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every token failure mode: missing, malformed,
// expired, or signed with the wrong key.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID       kernel.UUID
	Email        string
	Role         account.Role
	RestaurantID *kernel.UUID
}

// TokenService signs and verifies the HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// token lifetime.
func NewTokenService(secret []byte, ttl time.Duration) TokenService {
	return TokenService{secret: secret, ttl: ttl}
}

// Issue creates a signed JWT for an authenticated user.
func (s TokenService) Issue(userID kernel.UUID, email string, role account.Role, restaurantID *kernel.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if restaurantID != nil {
		claims.RestaurantID = restaurantID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a signed token and returns the caller identity.
func (s TokenService) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	identity := Identity{
		UserID: userID,
		Email:  claims.Email,
		Role:   role,
	}

	if claims.RestaurantID != "" {
		restaurantID, idErr := kernel.UUIDFromString(claims.RestaurantID)
		if idErr != nil {
			return Identity{}, ErrInvalidToken
		}
		identity.RestaurantID = &restaurantID
	}

	return identity, nil
}
