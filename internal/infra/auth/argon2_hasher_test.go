package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
)

// testHasher uses deliberately small parameters so the suite stays fast.
func testHasher() *argon2Hasher {
	return NewArgon2Hasher(&config.Config{
		Auth: &config.AuthConfig{
			Argon2Memory:      8 * 1024,
			Argon2Iterations:  1,
			Argon2Parallelism: 1,
		},
	}).(*argon2Hasher)
}

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := testHasher()

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"), "hash must be self-describing: %s", hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestArgon2Hasher_FreshSaltPerCall(t *testing.T) {
	hasher := testHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	// Same password, different salt, different encoding; both must verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same password", first))
	assert.True(t, hasher.Check("same password", second))
}

func TestArgon2Hasher_MalformedHashVerifiesFalse(t *testing.T) {
	hasher := testHasher()

	malformed := []string{
		"",
		"plainly not a hash",
		"$argon2id$v=19$m=8192,t=1,p=1$salt",                    // missing digest section
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$ZGlnZXN0",          // wrong variant
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$ZGlnZXN0",         // wrong version
		"$argon2id$v=19$m=8192,t=1,p=1$!notbase64!$ZGlnZXN0",    // undecodable salt
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$!notbase64!",      // undecodable digest
		"$argon2id$v=19$m=0,t=0,p=0$c2FsdA$ZGlnZXN0",            // zeroed parameters
		"$argon2id$v=19$m=8192,t=1,p=1000$c2FsdA$ZGlnZXN0",      // parallelism out of range
	}

	for _, hash := range malformed {
		assert.False(t, hasher.Check("whatever", hash), "expected false for malformed hash %q", hash)
	}
}

func TestArgon2Hasher_ConfigOverridesApplied(t *testing.T) {
	hasher := NewArgon2Hasher(&config.Config{
		Auth: &config.AuthConfig{
			Argon2Memory:      8 * 1024,
			Argon2Iterations:  2,
			Argon2Parallelism: 1,
			Argon2SaltLength:  24,
			Argon2KeyLength:   48,
		},
	}).(*argon2Hasher)

	hash, err := hasher.Hash("password")
	require.NoError(t, err)

	// The encoded hash carries the configured parameters end to end.
	memory, iterations, parallelism, salt, digest, ok := decodeHash(hash)
	require.True(t, ok)
	assert.Equal(t, uint32(8*1024), memory)
	assert.Equal(t, uint32(2), iterations)
	assert.Equal(t, uint8(1), parallelism)
	assert.Len(t, salt, 24)
	assert.Len(t, digest, 48)

	assert.True(t, hasher.Check("password", hash))
}

func TestArgon2Hasher_DefaultsApplied(t *testing.T) {
	hasher := NewArgon2Hasher(nil).(*argon2Hasher)

	assert.Equal(t, uint32(defaultMemory), hasher.memory)
	assert.Equal(t, uint32(defaultIterations), hasher.iterations)
	assert.Equal(t, uint8(defaultParallelism), hasher.parallelism)
	assert.Equal(t, uint32(defaultSaltLength), hasher.saltLength)
	assert.Equal(t, uint32(defaultKeyLength), hasher.keyLength)
}
