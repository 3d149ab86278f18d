package password

import (
	"errors"

	"github.com/alexedwards/argon2id"
)

// Hasher — argon2id поверх настраиваемых параметров стоимости.
type Hasher struct {
	params *argon2id.Params
}

// NewDefault использует параметры библиотеки по умолчанию: для
// регистрации/входа этого достаточно, тюнинг стоимости не требуется.
func NewDefault() *Hasher {
	return &Hasher{params: argon2id.DefaultParams}
}

func New(p *argon2id.Params) *Hasher { return &Hasher{params: p} }

// Hash кодирует пароль в строку $argon2id$v=19$m=... — соль и параметры
// внутри, в БД уходит одна колонка.
func (h *Hasher) Hash(plain string) (string, error) {
	if h == nil || h.params == nil {
		return "", errors.New("argon2id params not set")
	}
	return argon2id.CreateHash(plain, h.params)
}

// Verify сверяет пароль с закодированным хэшем; параметры читаются из
// самой строки, так что старые хэши остаются проверяемыми после смены
// дефолтов.
func (h *Hasher) Verify(plain, encodedHash string) (bool, error) {
	return argon2id.ComparePasswordAndHash(plain, encodedHash)
}
