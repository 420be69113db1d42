package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtract(t *testing.T) {
	token, err := GenerateToken("user-1", "ivan@example.com", "lawyer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	subject, role, err := ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims failed: %v", err)
	}
	if subject != "user-1" {
		t.Errorf("subject = %q, want %q", subject, "user-1")
	}
	if role != "lawyer" {
		t.Errorf("role = %q, want %q", role, "lawyer")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "ivan@example.com", "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, _, err := ExtractClaims(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "ivan@example.com", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Error("HashToken is not deterministic")
	}
	if a == HashToken("other-token") {
		t.Error("different tokens hash equal")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
