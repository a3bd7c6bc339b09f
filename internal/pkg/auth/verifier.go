package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a presented administrative credential. The gateway
// depends only on this interface, so the credential scheme can change
// without touching handler logic.
type Verifier interface {
	Verify(token string) bool
	Name() string
}

// StaticVerifier compares the presented token against a shared secret
// in constant time.
type StaticVerifier struct {
	token []byte
}

// NewStaticVerifier builds StaticVerifier around the shared token.
func NewStaticVerifier(token string) *StaticVerifier {
	return &StaticVerifier{token: []byte(token)}
}

// Verify reports whether the presented token matches the shared secret.
func (v *StaticVerifier) Verify(token string) bool {
	if len(v.token) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(v.token, []byte(token)) == 1
}

func (v *StaticVerifier) Name() string {
	return "static"
}

// BcryptVerifier checks the presented token against a bcrypt hash, so
// the plaintext secret never has to live in configuration.
type BcryptVerifier struct {
	hash []byte
}

// NewBcryptVerifier builds BcryptVerifier around a bcrypt hash.
func NewBcryptVerifier(hash string) *BcryptVerifier {
	return &BcryptVerifier{hash: []byte(hash)}
}

// Verify reports whether the presented token matches the stored hash.
func (v *BcryptVerifier) Verify(token string) bool {
	if len(v.hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(token)) == nil
}

func (v *BcryptVerifier) Name() string {
	return "bcrypt"
}

// HashToken produces a bcrypt hash suitable for BcryptVerifier.
func HashToken(token string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
