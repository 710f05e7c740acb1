package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenLifetime is how long an issued token remains valid.
const TokenLifetime = 30 * 24 * time.Hour

const (
	emailClaim = "email"
	expClaim   = "exp"
)

var (
	// ErrTokenExpired means the token was well-formed and correctly signed
	// but its embedded expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed means the token could not be decoded or its
	// signature did not validate.
	ErrTokenMalformed = errors.New("token malformed")
)

// TokenService issues and verifies signed identity assertions. It holds no
// per-token state: verification is purely cryptographic, so issued tokens
// cannot be revoked before they expire.
type TokenService struct {
	signingKey []byte
	now        func() time.Time
}

func NewTokenService(signingKey []byte) *TokenService {
	return &TokenService{
		signingKey: signingKey,
		now:        time.Now,
	}
}

// Issue creates a signed token binding the given email to an expiry
// TokenLifetime from now.
func (ts *TokenService) Issue(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		emailClaim: email,
		expClaim:   ts.now().Add(TokenLifetime).Unix(),
	})

	return token.SignedString(ts.signingKey)
}

// Verify checks the token's signature and expiry and returns the embedded
// email. Expiry is checked explicitly against the service clock so that a
// token is rejected exactly at the boundary.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenMalformed
	}

	exp, ok := claims[expClaim].(float64)
	if !ok {
		return "", ErrTokenMalformed
	}
	if !ts.now().Before(time.Unix(int64(exp), 0)) {
		return "", ErrTokenExpired
	}

	email, ok := claims[emailClaim].(string)
	if !ok || email == "" {
		return "", ErrTokenMalformed
	}

	return email, nil
}
