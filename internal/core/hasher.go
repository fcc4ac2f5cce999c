package core

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

// Hasher turns passwords into the digest stored in the credential file.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

func NewHasher(scheme string) (Hasher, error) {
	switch strings.ToLower(scheme) {
	case "", SchemeSHA256:
		return SHA256Hasher{}, nil
	case SchemeBcrypt:
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPasswordScheme, scheme)
	}
}

// SHA256Hasher produces unsalted lowercase hex SHA-256 digests, so equal
// passwords give equal hashes across users.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	return sha256Hex(password), nil
}

func (SHA256Hasher) Verify(hash, password string) bool {
	return subtle.ConstantTimeCompare([]byte(hash), []byte(sha256Hex(password))) == 1
}

// BcryptHasher salts every password. Verify still accepts SHA-256 digests
// written before the scheme was switched.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

func (h BcryptHasher) Verify(hash, password string) bool {
	if !strings.HasPrefix(hash, "$2") {
		return SHA256Hasher{}.Verify(hash, password)
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func sha256Hex(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
