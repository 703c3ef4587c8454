package utils

import "testing"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	ciphertext, err := EncryptString("JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if ciphertext == "JBSWY3DPEHPK3PXP" {
		t.Fatal("ciphertext equals plaintext")
	}

	plaintext, err := DecryptString(ciphertext)
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if plaintext != "JBSWY3DPEHPK3PXP" {
		t.Errorf("round trip = %q", plaintext)
	}
}

func TestEncryptRequiresKey(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", "too-short")

	if _, err := EncryptString("secret"); err == nil {
		t.Error("expected error with a short key")
	}
}

func TestDecryptGarbageFails(t *testing.T) {
	t.Setenv("DATA_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	if _, err := DecryptString("bm90LXZhbGlk"); err == nil {
		t.Error("expected error on garbage ciphertext")
	}
}
