package mw

import (
	"log"
	"net/http"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

type AuthDeps struct {
	Log    *log.Logger
	Tokens domain.TokenManager
}

// RequireAuth проверяет заголовок `token` до какой-либо работы с телом
// запроса. Валидный токен кладёт пользователя в контекст запроса,
// всё остальное — 401.
func RequireAuth(deps AuthDeps, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("token")
		if raw == "" {
			deps.Log.Printf("lvl=info req_id=%s msg=%q path=%q", RequestIDFromCtx(r.Context()), "missing token", r.URL.Path)
			writeUnauthorized(w)
			return
		}
		claims, err := deps.Tokens.Parse(r.Context(), raw)
		if err != nil {
			deps.Log.Printf("lvl=info req_id=%s msg=%q path=%q err=%q", RequestIDFromCtx(r.Context()), "token rejected", r.URL.Path, err.Error())
			writeUnauthorized(w)
			return
		}
		u := domain.User{ID: claims.UserID, Username: claims.Username}
		next.ServeHTTP(w, r.WithContext(domain.WithUser(r.Context(), u)))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"code":401,"msg":"unauthorized"}`))
}
