package user

import (
	"encoding/json"
	"net/http"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/logx"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/mw"
	v1 "github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1"
)

type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	AvatarURL string `json:"avatarUrl"`
}

// Register godoc
// @Summary     Register new user
// @Description Регистрация нового пользователя. Пароль хранится только хэшем.
// @Tags        user
// @Accept      json
// @Produce     json
// @Param       request body registerRequest true "username, password, avatarUrl?"
// @Success     200 {object} domain.Result
// @Failure     400 {object} domain.Result
// @Failure     500 {object} domain.Result
// @Router      /user/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "user.register"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.Validationf("bad request body"))
		return
	}

	u, err := h.Users.Register(r.Context(), req.Username, req.Password, req.AvatarURL)
	if err != nil {
		logx.Error(h.Log, reqID, op, "register failed", err, "username", req.Username)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "username", u.Username)
	v1.WriteOK(w, r, nil)
}
