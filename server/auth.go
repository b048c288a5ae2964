package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pellham/nlgram/server/serr"
)

// hashPassword bcrypt-hashes a plaintext password for storage.
func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// checkPassword reports whether plain matches the stored bcrypt hash.
func checkPassword(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return serr.ErrBadCredentials
	}
	return err
}

// generateToken issues a JWT for acct, signed with secret.
func generateToken(acct Account, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"iss": "gramsvc",
		"sub": acct.ID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return tok.SignedString(secret)
}

// verifyToken parses and validates tok, returning the subject account ID
// string.
func verifyToken(tok string, secret []byte) (string, error) {
	parsed, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer("gramsvc"), jwt.WithLeeway(time.Minute))
	if err != nil {
		return "", err
	}
	return parsed.Claims.GetSubject()
}
