package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
	"github.com/pawmart/pawmart/internal/domain/repository"
	pkgAuth "github.com/pawmart/pawmart/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users      repository.UserRepository
	hasher     pkgAuth.PasswordHasher
	tokens     pkgAuth.Strategy
	adminEmail string
}

// NewAuthUseCase constructs AuthUseCase. Accounts registered with adminEmail
// are promoted to the admin role.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, adminEmail string) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, adminEmail: strings.ToLower(adminEmail)}
}

// Register creates a new user and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	role := model.RoleUser
	if u.adminEmail != "" && email == u.adminEmail {
		role = model.RoleAdmin
	}

	usr := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(pkgAuth.Identity{UserID: usr.ID, Role: usr.Role})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(pkgAuth.Identity{UserID: usr.ID, Role: usr.Role})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the identity from provided token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Identity, error) {
	if token == "" {
		return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
