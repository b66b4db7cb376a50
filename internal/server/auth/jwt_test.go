package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	principal := "0xA11CE"

	tok, err := GenerateToken(principal, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got, err := GetPrincipalFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetPrincipalFromToken error: %v", err)
	}
	if got != principal {
		t.Fatalf("principal mismatch: got %q want %q", got, principal)
	}
}

func TestGetPrincipalFromToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("p1", []byte("secret"), -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetPrincipalFromToken(tok, []byte("secret"))
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestGetPrincipalFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("p2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetPrincipalFromToken(tok, []byte("wrong-secret"))
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestGetPrincipalFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := GetPrincipalFromToken("not.a.jwt", []byte("k"))
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
