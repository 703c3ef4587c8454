package utils

import (
	"strings"
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if claims.UserID != "user-1" || claims.Username != "alice" || claims.Email != "alice@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestAccessTokenTamperRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]
	if _, err := ParseAccessToken(tampered); err == nil {
		t.Error("tampered token accepted")
	}
}

func TestAccessTokenWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateAccessToken("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	if _, err := ParseAccessToken(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateAccessToken("u", "n", "e"); err == nil {
		t.Error("expected error without JWT_SECRET")
	}
}
