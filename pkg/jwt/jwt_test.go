package jwt

import (
	"testing"
	"time"

	"clinic-management/config"
)

func newService(expiry time.Duration) *JWTService {
	return NewJWTService(config.SessionConfig{Secret: "test-secret", Expiry: expiry})
}

func TestGenerateAndValidate(t *testing.T) {
	s := newService(time.Hour)

	token, sessionID, err := s.GenerateSessionToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected a session id")
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.SessionID != sessionID {
		t.Errorf("SessionID = %q, want %q", claims.SessionID, sessionID)
	}
}

func TestGenerate_UniqueSessionIDs(t *testing.T) {
	s := newService(time.Hour)

	_, a, _ := s.GenerateSessionToken()
	_, b, _ := s.GenerateSessionToken()
	if a == b {
		t.Error("expected distinct session ids")
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	token, _, err := newService(time.Hour).GenerateSessionToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := NewJWTService(config.SessionConfig{Secret: "other", Expiry: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected error for token signed with another secret")
	}
}

func TestValidate_Expired(t *testing.T) {
	token, _, err := newService(-time.Minute).GenerateSessionToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := newService(time.Hour).ValidateToken(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestValidate_Garbage(t *testing.T) {
	for _, token := range []string{"", "abc", "a.b.c"} {
		if _, err := newService(time.Hour).ValidateToken(token); err == nil {
			t.Errorf("ValidateToken(%q): expected error", token)
		}
	}
}
