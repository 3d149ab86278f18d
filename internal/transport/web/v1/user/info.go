package user

import (
	"net/http"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/logx"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/mw"
	v1 "github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1"
)

type infoResponse struct {
	UserID    domain.UserID `json:"userId"`
	Username  string        `json:"username"`
	AvatarURL string        `json:"avatarUrl"`
}

// Info godoc
// @Summary     Current user info
// @Description Профиль текущего пользователя (по токену), без пароля.
// @Tags        user
// @Produce     json
// @Param       token header string true "JWT"
// @Success     200 {object} domain.Result
// @Failure     401 {object} domain.Result
// @Router      /user/info [get]
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	const op = "user.info"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := domain.UserFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "unauthorized", domain.ErrInvalidToken)
		v1.WriteDomainError(w, r, domain.ErrInvalidToken)
		return
	}

	u, err := h.Users.Info(r.Context(), me.ID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "info failed", err, "user_id", me.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID)
	v1.WriteOK(w, r, infoResponse{UserID: u.ID, Username: u.Username, AvatarURL: u.AvatarURL})
}
