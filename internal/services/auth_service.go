package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"productcatalog/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const bearerPrefix = "Bearer "

// CredentialStore looks up seeded credentials by username.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (domain.Credential, error)
}

// AuthService issues and verifies signed, time-limited access tokens. The
// secret is fixed at service start; verification is pure computation with no
// session table. Expiry is checked with zero clock-skew leeway.
type AuthService struct {
	Creds  CredentialStore
	Secret []byte
	TTL    time.Duration
}

// Issue checks the credential and returns a signed HS256 token carrying the
// subject and its expiry. Unknown users and wrong passwords produce the same
// AuthError so the response does not leak which one failed.
func (a AuthService) Issue(ctx context.Context, username, password string) (string, time.Time, error) {
	cred, err := a.Creds.FindByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", time.Time{}, domain.AuthError{Msg: "invalid credentials"}
		}
		return "", time.Time{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, domain.AuthError{Msg: "invalid credentials"}
	}

	now := time.Now()
	expiresAt := now.Add(a.TTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   cred.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(a.Secret)
	if err != nil {
		return "", time.Time{}, domain.InternalError{Msg: "token signing failed", Err: err}
	}
	return signed, expiresAt, nil
}

// Verify checks the signature and expiry and returns the token subject.
func (a AuthService) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.AuthError{Msg: "invalid or expired token", Err: err}
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.AuthError{Msg: "invalid token subject"}
	}
	return claims.Subject, nil
}

// Authorize gates every mutation regardless of surface. The header must be
// present and of the form "Bearer <token>"; absence or a malformed header is
// reported separately from a token that is present but fails verification.
func (a AuthService) Authorize(authHeader string) (string, error) {
	if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", domain.AuthError{Msg: "missing or invalid credentials"}
	}
	return a.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
}
