package utils

import (
	"testing"
	"time"

	"roomify/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-123", "guest@example.com", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	userID, role, err := ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ExtractClaimsFromToken() error = %v", err)
	}
	if userID != "user-123" || role != "user" {
		t.Fatalf("claims = (%q, %q), want (user-123, user)", userID, role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-123", "guest@example.com", "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if _, _, err := ExtractClaimsFromToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-123", "guest@example.com", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	config.AppConfig.JWTSecret = "other-secret"
	if _, _, err := ExtractClaimsFromToken(token); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("token-a")
	if a != HashToken("token-a") {
		t.Fatal("HashToken is not deterministic")
	}
	if a == HashToken("token-b") {
		t.Fatal("distinct tokens hashed to the same value")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(a))
	}
}
