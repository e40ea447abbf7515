package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest. The salt and cost live
// inside the digest, so verification needs nothing else.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored digest. Any
// malformed digest simply fails the check.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
