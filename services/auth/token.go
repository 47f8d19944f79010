package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"marhaba/models/user"
	"marhaba/utils"
)

const (
	Issuer = "marhaba"

	// SessionTTL matches the access cookie lifetime
	SessionTTL = 8 * time.Hour
	// RememberTTL is used when the user asks to stay signed in
	RememberTTL = 7 * 24 * time.Hour
)

// Claims identify the session user inside a token
type Claims struct {
	UserID int64         `json:"user_id"`
	Name   string        `json:"name"`
	Role   user.UserType `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens
type TokenIssuer struct {
	secret []byte
	clock  utils.Clock
}

func NewTokenIssuer(secret string, clock utils.Clock) *TokenIssuer {
	if clock == nil {
		clock = time.Now
	}
	return &TokenIssuer{secret: []byte(secret), clock: clock}
}

func (t *TokenIssuer) Issue(u user.User, ttl time.Duration) (string, error) {
	issuedAt := t.clock()
	claims := Claims{
		UserID: u.ID,
		Name:   u.Name,
		Role:   u.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature, issuer and expiry of a token
func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(t.clock),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	return claims, nil
}
