package auth

import (
	"testing"
	"time"

	"github.com/pawmart/pawmart/internal/domain/model"
)

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})

	token, err := strategy.IssueToken(Identity{UserID: "user-1", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if identity.UserID != "user-1" {
		t.Fatalf("unexpected user id: %q", identity.UserID)
	}
	if !identity.IsAdmin() {
		t.Fatal("expected admin identity")
	}
}

func TestJWTStrategy_UnknownRoleFallsBackToUser(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	token, err := strategy.IssueToken(Identity{UserID: "user-2", Role: model.Role("superuser")})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	identity, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if identity.Role != model.RoleUser {
		t.Fatalf("unexpected role: %q", identity.Role)
	}
}

func TestJWTStrategy_ParseFailures(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})

	if _, err := strategy.ParseToken("garbage"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	other := NewJWTStrategy("different-secret", Options{})
	token, err := other.IssueToken(Identity{UserID: "user-1", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTStrategy_ExpiredToken(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: -time.Minute})
	token, err := strategy.IssueToken(Identity{UserID: "user-1", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTStrategy_Name(t *testing.T) {
	if got := NewJWTStrategy("s", Options{}).Name(); got != "jwt" {
		t.Fatalf("unexpected name %q", got)
	}
}
