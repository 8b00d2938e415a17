// Package passwords hashes and checks account passwords with bcrypt.
package passwords

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of password for storage.
func Hash(password string) ([]byte, error) {
	const op = "passwords.Hash"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return hash, nil
}

// Compare returns nil when password matches hash.
func Compare(hash []byte, password string) error {
	const op = "passwords.Compare"
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
