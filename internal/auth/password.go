package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword applies a salted one-way hash with the given cost factor.
// Cost is expected to be validated by the config layer; bcrypt itself
// clamps anything below its minimum.
func HashPassword(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches hash. A wrong password is
// a false return, never an error surfaced to the caller.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
