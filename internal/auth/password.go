package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 16
)

// ErrWeakPassword is returned when a password fails the registration
// policy: 8-16 characters, ASCII letters and digits only, with at least
// one letter and one digit.
var ErrWeakPassword = errors.New("password must be 8-16 letters and digits")

func ValidatePassword(passwd string) error {
	if len(passwd) < minPasswordLen || len(passwd) > maxPasswordLen {
		return ErrWeakPassword
	}

	var hasLetter, hasDigit bool
	for _, r := range passwd {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			return ErrWeakPassword
		}
	}

	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}

	return nil
}

func HashPassword(passwd string) (string, error) {
	passwdHash, err := bcrypt.GenerateFromPassword([]byte(passwd), bcrypt.DefaultCost)
	return string(passwdHash), err
}

func VerifyPassword(passwdHash, passwd string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(passwdHash), []byte(passwd))
	return err == nil
}
