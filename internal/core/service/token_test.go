package service

import (
	"testing"
	"time"

	"github.com/atelierhub/design-collab/internal/core/domain"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue("user_1", domain.RoleDesigner)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	userID, role, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if userID != "user_1" {
		t.Fatalf("expected user_1, got %s", userID)
	}
	if role != domain.RoleDesigner {
		t.Fatalf("expected designer role, got %s", role)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	// Negative lifetime puts exp in the past at issuance.
	codec := &TokenCodec{secret: []byte("secret"), ttl: -time.Minute}

	token, err := codec.Issue("user_1", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, _, err := codec.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	issuer := NewTokenCodec("secret-a", time.Hour)
	verifier := NewTokenCodec("secret-b", time.Hour)

	token, err := issuer.Issue("user_1", domain.RoleDesigner)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, _, err := verifier.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenCodec_Garbage(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	if _, _, err := codec.Verify("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenCodec_DefaultTTL(t *testing.T) {
	codec := NewTokenCodec("secret", 0)
	if codec.ttl != defaultTokenTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultTokenTTL, codec.ttl)
	}
}
