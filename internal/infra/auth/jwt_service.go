// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	// minSecretLength is the minimum number of bytes required of the signing secret.
	minSecretLength = 32

	defaultTTL    = 24 * time.Hour
	defaultLeeway = 60 * time.Second
	maxLeeway     = 300 * time.Second
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. Tokens are signed with a single symmetric algorithm
// (HS256); the verifier rejects every other algorithm to rule out
// algorithm-confusion attacks.
type jwtService struct {
	secret   []byte
	ttl      time.Duration
	leeway   time.Duration
	issuer   string
	audience string
}

// NewJWTService is the constructor for jwtService. It fails fast when the
// signing secret is absent or shorter than the minimum length policy, so a
// misconfigured process never starts serving.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || len(cfg.Auth.Secret) < minSecretLength {
		return nil, errors.Wrapf(domainerrors.ErrMissingOrWeakSecret, "signing secret must be at least %d bytes", minSecretLength)
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	leeway := defaultLeeway
	if cfg.Auth.Leeway > 0 {
		leeway = min(cfg.Auth.Leeway, maxLeeway)
	}

	return &jwtService{
		secret:   []byte(cfg.Auth.Secret),
		ttl:      ttl,
		leeway:   leeway,
		issuer:   cfg.Auth.Issuer,
		audience: cfg.Auth.Audience,
	}, nil
}

// CreateToken issues a signed HS256 token for the given user, valid from now
// until now plus the configured TTL.
func (s *jwtService) CreateToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	if s.issuer != "" {
		claims.Issuer = s.issuer
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken verifies the signature and the time window of a token string.
// Expiry and not-before are checked with the configured leeway; issuer and
// audience must match exactly when configured. Failures map onto the typed
// auth errors so the delivery layer can answer with a structured body.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(s.leeway),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		options = append(options, jwt.WithAudience(s.audience))
	}

	registered := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, registered, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, options...)
	if err != nil {
		return nil, mapTokenError(err)
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenMalformed
	}

	userID, err := strconv.ParseInt(registered.Subject, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("subject is not a user id")
	}

	return &service.Claims{
		UserID:           userID,
		RegisteredClaims: *registered,
	}, nil
}

// mapTokenError translates jwt/v5 validation errors into the domain taxonomy.
// Signature problems are checked before time-window problems so a forged token
// never learns whether its timestamps were acceptable.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrTokenUnverifiable):
		return domainerrors.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet) || errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return domainerrors.ErrTokenNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer) || errors.Is(err, jwt.ErrTokenInvalidAudience):
		return domainerrors.ErrTokenSignatureInvalid.WithDetails("issuer or audience mismatch")
	default:
		return domainerrors.ErrTokenMalformed
	}
}
