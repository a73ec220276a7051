package auth

import "testing"

func TestHashPasswordAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword("s3cret-pass", hash) {
		t.Error("expected matching password to verify")
	}
	if CheckPassword("wrong-pass", hash) {
		t.Error("expected non-matching password to fail verification")
	}
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	first, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if first == second {
		t.Error("hashing the same password twice should produce different hashes")
	}
	if !CheckPassword("same-input", first) || !CheckPassword("same-input", second) {
		t.Error("both hashes should still verify against the original password")
	}
}

func TestCheckPasswordRejectsGarbageHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Error("expected verification against a malformed hash to fail")
	}
}
