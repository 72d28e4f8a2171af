package auth

import "testing"

func TestHashPassword_NonDeterministic(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == "secret1" || h2 == "secret1" {
		t.Fatalf("hash must never equal the plaintext")
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPassword("secret1", h) {
		t.Fatalf("correct password must verify")
	}
	if CheckPassword("secret2", h) {
		t.Fatalf("wrong password must not verify")
	}
	if CheckPassword("", h) {
		t.Fatalf("empty password must not verify")
	}
}
