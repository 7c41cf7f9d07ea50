package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooLong  = errors.New("password longer than 72 bytes")
)

const (
	DefaultCost = bcrypt.DefaultCost
	// SeedCost matches the demo accounts created by cmd/seed.
	SeedCost = 10
	// MaxLength is bcrypt's input limit in bytes.
	MaxLength = 72
)

func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultCost)
}

func HashPasswordWithCost(password string, cost int) (string, error) {
	switch {
	case password == "":
		return "", ErrInvalidPassword
	case len(password) > MaxLength:
		return "", ErrPasswordTooLong
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}

	return string(hashedBytes), nil
}

// ComparePassword returns ErrComparisonFailed for a wrong password and ErrInvalidPassword for unusable input.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" || len(password) > MaxLength {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
