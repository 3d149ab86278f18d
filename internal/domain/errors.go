package domain

import (
	"errors"
	"fmt"
)

// Бизнес-ошибки. Сервисы возвращают их (обычно обёрнутыми через %w),
// транспортный слой один раз маппит на HTTP-статусы и конверт.
var (
	ErrValidation         = errors.New("validation_failed")   // 400
	ErrNotFound           = errors.New("not_found")           // 404
	ErrDuplicateUser      = errors.New("duplicate_username")  // 400
	ErrInvalidCredentials = errors.New("invalid_credentials") // 401
	ErrInvalidToken       = errors.New("invalid_token")       // 401
	ErrStorage            = errors.New("storage_unavailable") // 500, причина остаётся в логах
	ErrPersistence        = errors.New("persistence_failed")  // 500, причина остаётся в логах
	ErrUnexpected         = errors.New("unexpected")          // 500
)

// ValidationError несёт пользовательский текст причины поверх ErrValidation.
// Текст достаётся через errors.As и переживает любое число обёрток %w,
// в отличие от разбора err.Error() по префиксу.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return ErrValidation.Error() + ": " + e.Msg }
func (e *ValidationError) Unwrap() error { return ErrValidation }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
