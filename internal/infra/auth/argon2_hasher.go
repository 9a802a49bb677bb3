// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// Default argon2id parameters, tuned so a single hash takes on the order of
// 100ms on commodity hardware.
const (
	defaultMemory      = 64 * 1024 // KiB
	defaultIterations  = 3
	defaultParallelism = 2
	defaultSaltLength  = 16
	defaultKeyLength   = 32
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id, a memory-hard algorithm. The encoded output is
// self-describing, so parameters can change without invalidating stored hashes.
type argon2Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// NewArgon2Hasher is the constructor for argon2Hasher. Zero-valued config
// fields fall back to the package defaults.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	hasher := &argon2Hasher{
		memory:      defaultMemory,
		iterations:  defaultIterations,
		parallelism: defaultParallelism,
		saltLength:  defaultSaltLength,
		keyLength:   defaultKeyLength,
	}
	if cfg == nil || cfg.Auth == nil {
		return hasher
	}

	if cfg.Auth.Argon2Memory > 0 {
		hasher.memory = cfg.Auth.Argon2Memory
	}
	if cfg.Auth.Argon2Iterations > 0 {
		hasher.iterations = cfg.Auth.Argon2Iterations
	}
	if cfg.Auth.Argon2Parallelism > 0 {
		hasher.parallelism = cfg.Auth.Argon2Parallelism
	}
	if cfg.Auth.Argon2SaltLength > 0 {
		hasher.saltLength = cfg.Auth.Argon2SaltLength
	}
	if cfg.Auth.Argon2KeyLength > 0 {
		hasher.keyLength = cfg.Auth.Argon2KeyLength
	}

	return hasher
}

// Hash derives an argon2id digest from the password with a fresh random salt
// and returns it in the standard encoded form:
// $argon2id$v=19$m=65536,t=3,p=2$BASE64_SALT$BASE64_DIGEST
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	digest := argon2.IDKey([]byte(password), salt, h.iterations, h.memory, h.parallelism, h.keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.iterations, h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// Check recomputes the digest with the parameters stored in the encoded hash
// and compares in constant time. Malformed hashes verify as false.
func (h *argon2Hasher) Check(password, hash string) bool {
	memory, iterations, parallelism, salt, digest, ok := decodeHash(hash)
	if !ok {
		return false
	}

	recomputed := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(digest)))

	return subtle.ConstantTimeCompare(digest, recomputed) == 1
}

// decodeHash parses the encoded form produced by Hash. Any deviation from the
// expected shape reports !ok rather than an error; verification treats such
// hashes as a mismatch.
func decodeHash(hash string) (memory, iterations uint32, parallelism uint8, salt, digest []byte, ok bool) {
	parts := strings.Split(hash, "$")
	// ["", "argon2id", "v=19", "m=..,t=..,p=..", salt, digest]
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, false
	}

	var par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &par); err != nil {
		return 0, 0, 0, nil, nil, false
	}
	if par == 0 || par > 255 || memory == 0 || iterations == 0 {
		return 0, 0, 0, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, false
	}
	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(digest) == 0 {
		return 0, 0, 0, nil, nil, false
	}

	return memory, iterations, uint8(par), salt, digest, true
}
