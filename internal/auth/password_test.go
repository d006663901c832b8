package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Fatal("hash equals the plaintext")
	}

	if !VerifyPassword(hash, "correct horse battery staple") {
		t.Error("VerifyPassword() = false for the right password")
	}
	if VerifyPassword(hash, "wrong password") {
		t.Error("VerifyPassword() = true for the wrong password")
	}
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("samepassword")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("samepassword")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	// bcrypt salts, so two hashes of the same input must differ.
	if first == second {
		t.Error("two hashes of the same password are identical")
	}
}
