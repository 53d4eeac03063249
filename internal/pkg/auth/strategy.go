package auth

import (
	"errors"
	"time"

	"github.com/pawmart/pawmart/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID string
	Role   model.Role
}

// IsAdmin reports whether the identity may touch admin-only surface.
func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

type Strategy interface {
	IssueToken(identity Identity) (string, error)
	ParseToken(token string) (Identity, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
