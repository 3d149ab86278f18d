package file

import (
	"net/http"
	"strconv"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/logx"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/mw"
	v1 "github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1"
)

// Upload godoc
// @Summary     Upload study material
// @Description multipart: file + title + departmentId. Возвращает id новой записи.
// @Tags        file
// @Accept      multipart/form-data
// @Produce     json
// @Param       token header string true "JWT"
// @Param       file formData file true "Файл"
// @Param       title formData string true "Заголовок"
// @Param       departmentId formData int true "ID факультета"
// @Success     200 {object} domain.Result
// @Failure     400 {object} domain.Result
// @Failure     401 {object} domain.Result
// @Failure     500 {object} domain.Result
// @Router      /file/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "file.upload"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	me, ok := domain.UserFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "unauthorized", domain.ErrInvalidToken)
		v1.WriteDomainError(w, r, domain.ErrInvalidToken)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logx.Error(h.Log, reqID, op, "bad multipart", err)
		v1.WriteDomainError(w, r, domain.Validationf("invalid multipart form"))
		return
	}

	f, hdr, err := r.FormFile("file")
	if err != nil {
		logx.Error(h.Log, reqID, op, "missing file", err)
		v1.WriteDomainError(w, r, domain.Validationf("upload file must not be empty"))
		return
	}
	defer f.Close()

	title := r.FormValue("title")

	var departmentID *int64
	if s := r.FormValue("departmentId"); s != "" {
		n, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil {
			logx.Error(h.Log, reqID, op, "bad departmentId", perr, "raw", s)
			v1.WriteDomainError(w, r, domain.Validationf("departmentId must be a number"))
			return
		}
		departmentID = &n
	}

	id, err := h.Files.UploadMaterial(r.Context(), f, hdr.Size, hdr.Filename, title, departmentID, me.ID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "upload failed", err, "filename", hdr.Filename, "user_id", me.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "file_id", id, "user_id", me.ID)
	v1.WriteOK(w, r, id)
}
