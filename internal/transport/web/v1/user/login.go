package user

import (
	"encoding/json"
	"net/http"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/logx"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/mw"
	v1 "github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary     Authenticate user
// @Description Возвращает JWT (24 часа) при валидной паре логин/пароль.
// @Tags        user
// @Accept      json
// @Produce     json
// @Param       request body loginRequest true "username, password"
// @Success     200 {object} domain.Result
// @Failure     400 {object} domain.Result
// @Failure     401 {object} domain.Result
// @Router      /user/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "user.login"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.Validationf("bad request body"))
		return
	}

	tok, err := h.Users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "login failed", err, "username", req.Username)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "username", req.Username)
	v1.WriteOK(w, r, loginResponse{Token: tok})
}
