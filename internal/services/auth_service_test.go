package services

import (
	"context"
	"testing"
	"time"

	"productcatalog/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type fakeCreds struct {
	users map[string]string // username -> password hash
}

func (f fakeCreds) FindByUsername(_ context.Context, username string) (domain.Credential, error) {
	hash, ok := f.users[username]
	if !ok {
		return domain.Credential{}, domain.NotFoundError{Resource: "user"}
	}
	return domain.Credential{Username: username, PasswordHash: hash}, nil
}

func testAuthService(t *testing.T, ttl time.Duration) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return AuthService{
		Creds:  fakeCreds{users: map[string]string{"tester": string(hash)}},
		Secret: []byte("unit-test-secret"),
		TTL:    ttl,
	}
}

func TestIssueAndVerify(t *testing.T) {
	auth := testAuthService(t, 30*time.Minute)

	token, expiresAt, err := auth.Issue(context.Background(), "tester", "secret123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("empty token")
	}
	if remaining := time.Until(expiresAt); remaining < 29*time.Minute || remaining > 31*time.Minute {
		t.Fatalf("expiry not ~30m out: %v", remaining)
	}

	subject, err := auth.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "tester" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestIssue_WrongPassword(t *testing.T) {
	auth := testAuthService(t, time.Minute)

	_, _, err := auth.Issue(context.Background(), "tester", "wrong")
	if !domain.IsAuth(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if err.Error() != "invalid credentials" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestIssue_UnknownUser(t *testing.T) {
	auth := testAuthService(t, time.Minute)

	_, _, err := auth.Issue(context.Background(), "nobody", "secret123")
	if !domain.IsAuth(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	// same message as a wrong password, so the caller cannot probe usernames
	if err.Error() != "invalid credentials" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	auth := testAuthService(t, -time.Minute)

	token, _, err := auth.Issue(context.Background(), "tester", "secret123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = auth.Verify(token)
	if !domain.IsAuth(err) {
		t.Fatalf("expired token must fail with AuthError, got %v", err)
	}
}

func TestVerify_TamperedToken(t *testing.T) {
	auth := testAuthService(t, time.Minute)

	token, _, err := auth.Issue(context.Background(), "tester", "secret123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	other := auth
	other.Secret = []byte("some-other-secret")
	if _, err := other.Verify(token); !domain.IsAuth(err) {
		t.Fatalf("foreign signature must fail with AuthError, got %v", err)
	}

	if _, err := auth.Verify(token + "x"); !domain.IsAuth(err) {
		t.Fatalf("mangled token must fail with AuthError, got %v", err)
	}
}

func TestAuthorize_MissingOrMalformedHeader(t *testing.T) {
	auth := testAuthService(t, time.Minute)

	for _, header := range []string{"", "Basic dXNlcjpwYXNz", "bearer lowercase", "Token abc"} {
		_, err := auth.Authorize(header)
		if !domain.IsAuth(err) {
			t.Fatalf("header %q: expected AuthError, got %v", header, err)
		}
		if err.Error() != "missing or invalid credentials" {
			t.Fatalf("header %q: unexpected message %s", header, err.Error())
		}
	}
}

func TestAuthorize_PresentButInvalidToken(t *testing.T) {
	auth := testAuthService(t, time.Minute)

	_, err := auth.Authorize("Bearer not-a-jwt")
	if !domain.IsAuth(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	// distinct sub-case from a missing header
	if err.Error() == "missing or invalid credentials" {
		t.Fatalf("present-but-invalid token should be reported as a verification failure")
	}
}

func TestAuthorize_ValidBearer(t *testing.T) {
	auth := testAuthService(t, time.Minute)

	token, _, err := auth.Issue(context.Background(), "tester", "secret123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, err := auth.Authorize("Bearer " + token)
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	if subject != "tester" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}
