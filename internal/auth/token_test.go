package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/fitstack/trainings-api/internal/model"
)

func testKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating RSA key: %v", err)
	}
	return key
}

func testUser() model.User {
	return model.User{
		ID:       42,
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Role:     model.RoleTrainer,
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	key := testKey(t)
	svc := NewTokenServiceFromKeys(key, &key.PublicKey, 15*time.Minute)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Subject != "42" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "42")
	}
	if claims.Username != "jdoe" {
		t.Errorf("Username = %q, want %q", claims.Username, "jdoe")
	}
	if claims.Role != model.RoleTrainer {
		t.Errorf("Role = %q, want %q", claims.Role, model.RoleTrainer)
	}
	if !claims.Verified {
		t.Error("Verified = false, want true for Issue()")
	}
}

func TestIssuePendingIsUnverified(t *testing.T) {
	key := testKey(t)
	svc := NewTokenServiceFromKeys(key, &key.PublicKey, 15*time.Minute)

	token, err := svc.IssuePending(testUser())
	if err != nil {
		t.Fatalf("IssuePending() error = %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Verified {
		t.Error("Verified = true, want false for IssuePending()")
	}
	if claims.Subject != "42" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "42")
	}
}

func TestVerifyWrongKey(t *testing.T) {
	signer := NewTokenServiceFromKeys(testKey(t), nil, 15*time.Minute)
	other := testKey(t)
	verifier := NewTokenServiceFromKeys(nil, &other.PublicKey, 15*time.Minute)

	token, err := signer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("Verify() with wrong public key succeeded, want error")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	key := testKey(t)
	svc := NewTokenServiceFromKeys(key, &key.PublicKey, -time.Minute)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Error("Verify() of expired token succeeded, want error")
	}
}

func TestVerifyGarbage(t *testing.T) {
	key := testKey(t)
	svc := NewTokenServiceFromKeys(nil, &key.PublicKey, time.Minute)

	if _, err := svc.Verify("not.a.token"); err == nil {
		t.Error("Verify() of garbage succeeded, want error")
	}
}

func TestIssueWithoutPrivateKey(t *testing.T) {
	key := testKey(t)
	svc := NewTokenServiceFromKeys(nil, &key.PublicKey, time.Minute)

	if _, err := svc.Issue(testUser()); err == nil {
		t.Error("Issue() without private key succeeded, want error")
	}
}

func TestClaimsCaller(t *testing.T) {
	key := testKey(t)
	svc := NewTokenServiceFromKeys(key, &key.PublicKey, time.Minute)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	caller, err := claims.Caller()
	if err != nil {
		t.Fatalf("Caller() error = %v", err)
	}
	if caller.ID != 42 {
		t.Errorf("Caller ID = %d, want 42", caller.ID)
	}
	if !caller.IsStaff() {
		t.Error("TRAINER caller should be staff")
	}
}

func TestClaimsCallerBadSubject(t *testing.T) {
	claims := &Claims{}
	claims.Subject = "not-a-number"

	if _, err := claims.Caller(); err == nil {
		t.Error("Caller() with non-numeric subject succeeded, want error")
	}
}

func TestCallerIsStaff(t *testing.T) {
	tests := []struct {
		role model.Role
		want bool
	}{
		{model.RoleAdmin, true},
		{model.RoleTrainer, true},
		{model.RoleStaffer, true},
		{model.RoleSystem, true},
		{model.RoleAnalyst, true},
		{model.RoleUser, false},
		{model.RoleOther, false},
	}

	for _, tt := range tests {
		c := Caller{ID: 1, Role: tt.role}
		if got := c.IsStaff(); got != tt.want {
			t.Errorf("Caller{Role: %s}.IsStaff() = %v, want %v", tt.role, got, tt.want)
		}
	}
}
