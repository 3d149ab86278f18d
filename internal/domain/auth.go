package domain

import (
	"context"
	"time"
)

type Token = string

type TokenClaims struct {
	UserID    UserID
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Хеширование паролей
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encodedHash string) (bool, error)
}

// Управление токенами (JWT, реализация в internal/auth/token).
// Parse обязан вернуть ErrInvalidToken (обёрнутый) на битую подпись,
// мусор вместо токена и истёкший срок.
type TokenManager interface {
	Issue(ctx context.Context, userID UserID, username string) (Token, TokenClaims, error)
	Parse(ctx context.Context, t Token) (TokenClaims, error)
}
