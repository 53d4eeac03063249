package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
	pkgAuth "github.com/pawmart/pawmart/internal/pkg/auth"
	testhelpers "github.com/pawmart/pawmart/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(ident pkgAuth.Identity) (string, error) {
			return "token-" + ident.UserID, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), "")

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "Alice", "Alice@Example.com", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected user to have ID assigned")
	}
	if token != "token-"+user.ID {
		t.Fatalf("unexpected token %q", token)
	}
	if user.Role != model.RoleUser {
		t.Fatalf("unexpected role %q", user.Role)
	}

	// Email is normalized to lower case before storage.
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterAdminPromotion(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), "Owner@PawMart.dev")

	user, _, err := uc.Register(context.Background(), "Owner", "owner@pawmart.dev", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.Role != model.RoleAdmin {
		t.Fatalf("expected admin role for configured email, got %q", user.Role)
	}

	other, _, err := uc.Register(context.Background(), "Bob", "bob@pawmart.dev", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if other.Role != model.RoleUser {
		t.Fatalf("expected plain role for other emails, got %q", other.Role)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), "")

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Bob", "bob@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "Bobby", "bob@example.com", "secret"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterRejectsBlankFields(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub(), "")

	cases := [][3]string{
		{"", "a@b.com", "pass"},
		{"Alice", "", "pass"},
		{"Alice", "a@b.com", ""},
		{"   ", "a@b.com", "pass"},
	}
	for _, c := range cases {
		if _, _, err := uc.Register(context.Background(), c[0], c[1], c[2]); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %v, got %v", c, err)
		}
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub(), "")

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Carol", "carol@example.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "bad"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "ghost@example.com", "123456"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, "Carol@Example.com", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-"+user.ID {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{
		ParseFn: func(token string) (pkgAuth.Identity, error) {
			if token != "good" {
				return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
			}
			return pkgAuth.Identity{UserID: "user-9", Role: model.RoleAdmin}, nil
		},
	}, "")

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token for empty string, got %v", err)
	}
	if _, err := uc.ParseToken("bad"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}

	ident, err := uc.ParseToken("good")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if ident.UserID != "user-9" || !ident.IsAdmin() {
		t.Fatalf("unexpected identity %+v", ident)
	}
}
