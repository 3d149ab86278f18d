package file

import (
	"net/http"
	"strings"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/logx"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/mw"
	v1 "github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1"
)

// UploadAvatar godoc
// @Summary     Upload avatar image
// @Description Принимает картинку (jpg/jpeg/png) в multipart/form-data и возвращает публичный URL.
// @Tags        file
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Изображение"
// @Success     200 {object} domain.Result
// @Failure     400 {object} domain.Result
// @Failure     500 {object} domain.Result
// @Router      /file/upload/avatar [post]
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	const op = "file.upload_avatar"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

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

	// аватар — только картинка
	ct := hdr.Header.Get("Content-Type")
	if !isImageContentType(ct) {
		logx.Error(h.Log, reqID, op, "unsupported content type", domain.ErrValidation, "content_type", ct)
		v1.WriteDomainError(w, r, domain.Validationf("only jpg, jpeg and png images are allowed"))
		return
	}

	url, err := h.Files.UploadAvatar(r.Context(), f, hdr.Size, hdr.Filename)
	if err != nil {
		logx.Error(h.Log, reqID, op, "upload failed", err, "filename", hdr.Filename)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "url", url)
	v1.WriteOK(w, r, url)
}

func isImageContentType(ct string) bool {
	return strings.HasPrefix(ct, "image/jpeg") ||
		strings.HasPrefix(ct, "image/jpg") ||
		strings.HasPrefix(ct, "image/png")
}
