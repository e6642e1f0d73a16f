package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("hashing failed")
	ErrComparisonFailed = errors.New("comparison failed")
	ErrEmptySecret      = errors.New("empty secret")
)

const DefaultCost = bcrypt.DefaultCost

// Hash is used by the hashing helper command when provisioning a new admin
// key; the server itself only ever compares.
func Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(secret), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hashed, secret string) error {
	if hashed == "" || secret == "" {
		return ErrEmptySecret
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
