package cryptox

import (
	"bytes"
	"testing"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("passphrase"), []byte("salt-salt-salt-16"))

	plaintext := []byte("score=73")
	sealed, err := Seal(plaintext, key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	opened, err := Open(sealed, key)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("round trip mismatch: got %q want %q", opened, plaintext)
	}
}

func TestSeal_Blinded(t *testing.T) {
	key := DeriveKey([]byte("p"), []byte("s"))

	a, err := Seal([]byte("same"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b, err := Seal([]byte("same"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("expected distinct ciphertexts for repeated plaintext")
	}
}

func TestOpen_WrongKey(t *testing.T) {
	sealed, err := Seal([]byte("x"), DeriveKey([]byte("a"), []byte("s")))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err := Open(sealed, DeriveKey([]byte("b"), []byte("s"))); err == nil {
		t.Fatalf("expected error for wrong key")
	}
}

func TestOpen_TooShort(t *testing.T) {
	if _, err := Open([]byte{1, 2, 3}, DeriveKey([]byte("a"), []byte("s"))); err == nil {
		t.Fatalf("expected error for truncated ciphertext")
	}
}
