package main

import (
	"strings"
	"testing"
)

func newTestAuth(t *testing.T) *Auth {
	t.Helper()
	return NewAuth(openTestDB(t))
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newTestAuth(t)

	id, token, err := auth.Register("ada", "hunter2")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id == 0 || token == "" {
		t.Fatal("register should return an id and a token")
	}

	gotID, gotName, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if gotID != id || gotName != "ada" {
		t.Errorf("token claims = (%d, %q), want (%d, ada)", gotID, gotName, id)
	}

	loginID, loginToken, err := auth.Login("ada", "hunter2", "1.2.3.4")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loginID != id || loginToken == "" {
		t.Error("login should return the same player id and a token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newTestAuth(t)
	auth.Register("ada", "hunter2")

	if _, _, err := auth.Login("ada", "wrong", "1.2.3.4"); err == nil {
		t.Error("wrong password should fail")
	}
	if _, _, err := auth.Login("nobody", "hunter2", "1.2.3.4"); err == nil {
		t.Error("unknown user should fail")
	}
}

func TestRegisterValidation(t *testing.T) {
	auth := newTestAuth(t)

	if _, _, err := auth.Register("a", "hunter2"); err == nil {
		t.Error("too-short username should fail")
	}
	if _, _, err := auth.Register(strings.Repeat("x", maxUsernameLen+1), "hunter2"); err == nil {
		t.Error("too-long username should fail")
	}
	if _, _, err := auth.Register("ada", "x"); err == nil {
		t.Error("too-short password should fail")
	}

	auth.Register("ada", "hunter2")
	if _, _, err := auth.Register("ada", "hunter2"); err == nil {
		t.Error("duplicate username should fail")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	auth := newTestAuth(t)
	_, token, err := auth.Register("ada", "hunter2")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := auth.ValidateToken(token + "x"); err == nil {
		t.Error("tampered token should fail")
	}
	if _, _, err := auth.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token should fail")
	}

	// A token signed under a different secret must not validate
	other := NewAuth(openTestDB(t))
	if _, _, err := other.ValidateToken(token); err == nil {
		t.Error("token from another secret should fail")
	}
}

func TestLoginRateLimit(t *testing.T) {
	auth := newTestAuth(t)
	auth.Register("ada", "hunter2")

	for i := 0; i < maxLoginAttempts; i++ {
		auth.Login("ada", "wrong", "9.9.9.9")
	}
	if _, _, err := auth.Login("ada", "hunter2", "9.9.9.9"); err == nil {
		t.Error("attempts past the limit should be rejected")
	}
	// Other IPs are unaffected
	if _, _, err := auth.Login("ada", "hunter2", "8.8.8.8"); err != nil {
		t.Errorf("fresh IP should still log in: %v", err)
	}
}

func TestSecretPersistsAcrossRestart(t *testing.T) {
	db := openTestDB(t)

	first := NewAuth(db)
	_, token, err := first.Register("ada", "hunter2")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Same database, new Auth: the persisted secret must keep old tokens valid
	second := NewAuth(db)
	if _, _, err := second.ValidateToken(token); err != nil {
		t.Errorf("token should survive a restart: %v", err)
	}
}

func TestGenerateGuestName(t *testing.T) {
	name := GenerateGuestName()
	if !strings.HasPrefix(name, "Pilot_") {
		t.Errorf("guest name = %q, want Pilot_ prefix", name)
	}
}
