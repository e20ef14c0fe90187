package auth

import (
	"testing"
	"time"
)

func newTestTokenService() *TokenService {
	return NewTokenService([]byte("test-secret-key-32bytes-long!!"), time.Hour)
}

func TestIssueAndValidate(t *testing.T) {
	ts := newTestTokenService()

	token, err := ts.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ts.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if claims.Scope != ScopeEditor {
		t.Errorf("Scope = %q, want %q", claims.Scope, ScopeEditor)
	}
	if claims.Issuer != "shadetree" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "shadetree")
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expected ExpiresAt to be set")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 59*time.Minute || ttl > time.Hour {
		t.Errorf("token TTL = %v, want about 1h", ttl)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	ts := newTestTokenService()
	token, err := ts.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewTokenService([]byte("a-completely-different-secret!"), time.Hour)
	if _, err := other.Validate(token); err == nil {
		t.Error("expected validation to fail with wrong secret")
	}
}

func TestValidate_Expired(t *testing.T) {
	ts := NewTokenService([]byte("test-secret-key-32bytes-long!!"), -time.Minute)
	token, err := ts.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := ts.Validate(token); err == nil {
		t.Error("expected validation to fail for expired token")
	}
}

func TestValidate_Garbage(t *testing.T) {
	ts := newTestTokenService()
	if _, err := ts.Validate("not.a.jwt"); err == nil {
		t.Error("expected validation to fail for garbage input")
	}
}
