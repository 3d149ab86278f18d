package file

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/logx"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/mw"
	v1 "github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1"
)

// Download godoc
// @Summary     Download file
// @Description Отдаёт контент файла как attachment; инкрементирует счётчик скачиваний.
// @Tags        file
// @Produce     application/octet-stream
// @Param       token header string true "JWT"
// @Param       fileId path string true "ID файла"
// @Success     200 {file} []byte
// @Failure     404 {object} domain.Result
// @Failure     401 {object} domain.Result
// @Failure     500 {object} domain.Result
// @Router      /file/download/{fileId} [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	const op = "file.download"
	reqID := mw.RequestIDFromCtx(r.Context())

	idStr := r.PathValue("fileId")
	fileID, err := uuid.Parse(idStr)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad file id", err, "file_id_raw", idStr)
		v1.WriteDomainError(w, r, domain.Validationf("bad file id"))
		return
	}
	logx.Info(h.Log, reqID, op, "start", "file_id", fileID)

	desc, err := h.Files.Prepare(r.Context(), fileID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "prepare failed", err, "file_id", fileID)
		v1.WriteDomainError(w, r, err)
		return
	}

	// заголовки до первого байта тела
	w.Header().Set("Content-Type", desc.ContentType())
	w.Header().Set("Content-Disposition", desc.ContentDisposition())
	if desc.ContentLength >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(desc.ContentLength, 10))
	}
	w.WriteHeader(http.StatusOK)

	// StreamTo освобождает источник на любом исходе; статус уже ушёл,
	// ошибку посреди потока можно только залогировать
	written, err := desc.StreamTo(w)
	if err != nil {
		logx.Error(h.Log, reqID, op, "stream interrupted", err, "file_id", fileID, "written", written)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "file_id", fileID, "written", written)
}
