package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SecretVerifier hashes and checks redemption PINs. The digest is a
// hex-encoded one-way hash; the plaintext PIN is never stored.
type SecretVerifier struct{}

func NewSecretVerifier() SecretVerifier {
	return SecretVerifier{}
}

func (SecretVerifier) Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

func (v SecretVerifier) Verify(secret, digest string) bool {
	computed := v.Hash(secret)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
