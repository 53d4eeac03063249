package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pawmart/pawmart/internal/domain/model"
)

// JWTStrategy implements token creation/verification with HS256 JWTs.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed token carrying user id and role.
func (s *JWTStrategy) IssueToken(identity Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// ParseToken validates the token and returns the encoded identity.
func (s *JWTStrategy) ParseToken(token string) (Identity, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	if parsed.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	role := model.Role(parsed.Role)
	if role != model.RoleAdmin {
		role = model.RoleUser
	}
	return Identity{UserID: parsed.Subject, Role: role}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
