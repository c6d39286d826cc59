package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest == "1234" {
		t.Fatal("digest must not equal the secret")
	}
	if !h.Verify("1234", digest) {
		t.Error("expected matching secret to verify")
	}
	if h.Verify("4321", digest) {
		t.Error("expected wrong secret to be rejected")
	}
}

func TestHash_IsSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Error("expected different digests for the same secret")
	}
}

func TestNewHasher_DefaultCost(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultCost},
		{-1, DefaultCost},
		{bcrypt.MaxCost + 1, DefaultCost},
		{bcrypt.MinCost, bcrypt.MinCost},
		{12, 12},
	}

	for _, tt := range tests {
		if got := NewHasher(tt.in).cost; got != tt.want {
			t.Errorf("NewHasher(%d).cost = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHash_UsesConfiguredCost(t *testing.T) {
	digest, err := NewHasher(0).Hash("1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != DefaultCost {
		t.Errorf("cost = %d, want %d", cost, DefaultCost)
	}
}

func TestVerify_KnownDigest(t *testing.T) {
	// Digest produced by the legacy Node.js service for "1234".
	legacy := "$2b$10$QvmyDRE76KuIQNY9XMeFtuj6E7Q/7NIdtJpy4gGORglivQ5jR6NDa"
	if !strings.HasPrefix(legacy, "$2b$") {
		t.Fatal("fixture must be a $2b$ digest")
	}

	h := NewHasher(DefaultCost)
	if h.Verify("wrong", legacy) {
		t.Error("expected wrong secret to be rejected")
	}
	if h.Verify("1234", "not-a-digest") {
		t.Error("expected malformed digest to be rejected")
	}
}
