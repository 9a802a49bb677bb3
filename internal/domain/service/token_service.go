package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the payload carried by a signed identity token.
type Claims struct {
	UserID int64
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed,
// time-limited identity tokens. Tokens are stateless; there is no
// refresh or revocation mechanism.
type TokenService interface {
	// CreateToken issues a signed token for the given user, valid from
	// now until now plus the configured TTL.
	CreateToken(userID int64) (string, error)

	// ValidateToken verifies the signature and the time window of a
	// token string and returns its claims. Failures surface as the
	// typed auth errors from internal/domain/errors.
	ValidateToken(tokenString string) (*Claims, error)
}
