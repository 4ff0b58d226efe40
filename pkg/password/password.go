package password

import "golang.org/x/crypto/bcrypt"

// Hash applies a salted bcrypt digest to the plaintext. The salt is
// randomized per call, so hashing the same password twice yields different
// digests that both verify.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches the stored digest. A malformed digest
// verifies as false rather than surfacing a distinguishable error, so callers
// cannot be used as an oracle on the stored hash format. Comparison is
// delegated to bcrypt, which is constant-time on the hash bytes.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
