package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/mw"
)

// MapDomainError решает HTTP-статус и конверт {code,msg} для бизнес-ошибки.
// Причины 500-х остаются в логах, наружу уходит общий текст.
func MapDomainError(err error) (httpStatus int, env domain.Result) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, domain.Fail(400, userText(err, "bad params"))
	case errors.Is(err, domain.ErrDuplicateUser):
		return http.StatusBadRequest, domain.Fail(400, "username already exists")
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, domain.Fail(404, "not found")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.Fail(401, "invalid username or password")
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, domain.Fail(401, "unauthorized")
	case errors.Is(err, domain.ErrStorage), errors.Is(err, domain.ErrPersistence):
		return http.StatusInternalServerError, domain.Fail(500, "internal error")
	default:
		// всё непредвиденное — как 500 без деталей
		return http.StatusInternalServerError, domain.Fail(500, "internal error")
	}
}

// Для валидационных ошибок текст различим по условию (пустой файл, пустой
// заголовок, нет факультета) — наружу уходит конкретное сообщение.
// Достаём его типизированно, сколько бы раз ошибку ни обернули.
func userText(err error, fallback string) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && ve.Msg != "" {
		return ve.Msg
	}
	return fallback
}

// WriteEnvelope пишет конверт; для HEAD — без тела
func WriteEnvelope(w http.ResponseWriter, r *http.Request, status int, env domain.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", mw.RequestIDFromCtx(r.Context()))
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(env)
}

// Шорткаты
func WriteOK(w http.ResponseWriter, r *http.Request, data any) {
	WriteEnvelope(w, r, http.StatusOK, domain.Success(data))
}

func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, env := MapDomainError(err)
	WriteEnvelope(w, r, status, env)
}
