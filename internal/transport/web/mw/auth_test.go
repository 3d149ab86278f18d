package mw

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/auth/token"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	tm := token.New("test-secret", "kaola-test", time.Hour)
	deps := AuthDeps{Log: log.New(io.Discard, "", 0), Tokens: tm}

	var seen domain.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := domain.UserFromCtx(r.Context())
		require.True(t, ok)
		seen = u
		w.WriteHeader(http.StatusOK)
	})
	h := RequireAuth(deps, next)

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/file/list", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"code":401,"msg":"unauthorized"}`, rec.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/file/list", nil)
		req.Header.Set("token", "not-a-jwt")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token puts user into context", func(t *testing.T) {
		userID := uuid.New()
		tok, _, err := tm.Issue(context.Background(), userID, "alice")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/file/list", nil)
		req.Header.Set("token", string(tok))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, seen.ID)
		assert.Equal(t, "alice", seen.Username)
	})
}
