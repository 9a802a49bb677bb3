package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

const testSecret = "test_signing_secret_key_very_long_for_testing"

func testConfig(mutate func(*config.AuthConfig)) *config.Config {
	authCfg := &config.AuthConfig{
		Secret:   testSecret,
		TokenTTL: time.Hour,
	}
	if mutate != nil {
		mutate(authCfg)
	}

	return &config.Config{Auth: authCfg}
}

func errorCode(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)

	return appErr.ErrorCode()
}

func TestJWTService_CreateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(testConfig(nil))
	require.NoError(t, err)

	token, err := svc.CreateToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// A freshly created token validates immediately and yields the same subject.
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_MissingOrWeakSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{Secret: "too-short"}})
	assert.ErrorIs(t, err, domainerrors.ErrMissingOrWeakSecret)

	_, err = NewJWTService(&config.Config{})
	assert.ErrorIs(t, err, domainerrors.ErrMissingOrWeakSecret)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig(func(authCfg *config.AuthConfig) {
		authCfg.TokenTTL = time.Nanosecond
		authCfg.Leeway = time.Nanosecond
	})
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.CreateToken(7)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, "TOKEN_EXPIRED", errorCode(t, err))
}

func TestJWTService_NotYetValidToken(t *testing.T) {
	cfg := testConfig(func(authCfg *config.AuthConfig) {
		authCfg.Leeway = time.Nanosecond
	})
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	now := time.Now()
	crafted := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now.Add(time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Hour)),
	})
	token, err := crafted.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, "TOKEN_NOT_YET_VALID", errorCode(t, err))
}

func TestJWTService_LeewayToleratesClockSkew(t *testing.T) {
	svc, err := NewJWTService(testConfig(nil))
	require.NoError(t, err)

	// Expired 30s ago: inside the default 60s leeway, so still accepted.
	now := time.Now()
	crafted := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-30 * time.Second)),
	})
	token, err := crafted.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestJWTService_InvalidSignature(t *testing.T) {
	svc, err := NewJWTService(testConfig(nil))
	require.NoError(t, err)

	other, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{
		Secret: "a_completely_different_secret_key_of_length",
	}})
	require.NoError(t, err)

	token, err := other.CreateToken(7)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, "TOKEN_SIGNATURE_INVALID", errorCode(t, err))
}

func TestJWTService_RejectsForeignAlgorithm(t *testing.T) {
	svc, err := NewJWTService(testConfig(nil))
	require.NoError(t, err)

	// Signed with the right secret but the wrong algorithm; the verifier
	// accepts HS256 only.
	now := time.Now()
	crafted := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.RegisteredClaims{
		Subject:   "7",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	token, err := crafted.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, "TOKEN_SIGNATURE_INVALID", errorCode(t, err))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testConfig(nil))
	require.NoError(t, err)

	for _, token := range []string{"", "clearly-not-a-jwt", "a.b.c"} {
		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.Equal(t, "TOKEN_MALFORMED", errorCode(t, err))
	}
}

func TestJWTService_NonNumericSubject(t *testing.T) {
	svc, err := NewJWTService(testConfig(nil))
	require.NoError(t, err)

	now := time.Now()
	crafted := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-user-id",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	token, err := crafted.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, "TOKEN_MALFORMED", errorCode(t, err))
}

func TestJWTService_IssuerAndAudienceEnforced(t *testing.T) {
	cfg := testConfig(func(authCfg *config.AuthConfig) {
		authCfg.Issuer = "storefront"
		authCfg.Audience = "storefront-web"
	})
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Round-trip through the same service succeeds.
	token, err := svc.CreateToken(7)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "storefront", claims.Issuer)

	// A token without the configured issuer/audience is rejected.
	now := time.Now()
	crafted := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		Issuer:    "someone-else",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	foreign, err := crafted.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(foreign)
	require.Error(t, err)
}
