package file

import (
	"net/http"
	"strconv"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/logx"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/mw"
	v1 "github.com/WylKeepStudy/KaoLaShare-backend/internal/transport/web/v1"
)

// List godoc
// @Summary     List files
// @Description Постраничный список файлов с фильтрами по факультету и ключевому слову.
// @Tags        file
// @Produce     json
// @Param       token header string true "JWT"
// @Param       pageNum query int true "Номер страницы (>= 1)"
// @Param       pageSize query int true "Размер страницы (>= 1)"
// @Param       departmentId query int false "ID факультета"
// @Param       keyword query string false "Подстрока имени файла"
// @Success     200 {object} domain.Result
// @Failure     400 {object} domain.Result
// @Failure     401 {object} domain.Result
// @Router      /file/list [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "file.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	q := r.URL.Query()
	pageNum, err1 := strconv.Atoi(q.Get("pageNum"))
	pageSize, err2 := strconv.Atoi(q.Get("pageSize"))
	if err1 != nil || err2 != nil {
		logx.Error(h.Log, reqID, op, "bad paging params", domain.ErrValidation,
			"pageNum", q.Get("pageNum"), "pageSize", q.Get("pageSize"))
		v1.WriteDomainError(w, r, domain.Validationf("pageNum and pageSize must be >= 1"))
		return
	}

	var departmentID *int64
	if s := q.Get("departmentId"); s != "" {
		n, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil {
			v1.WriteDomainError(w, r, domain.Validationf("departmentId must be a number"))
			return
		}
		departmentID = &n
	}
	keyword := q.Get("keyword")

	res, err := h.Files.FileList(r.Context(), pageNum, pageSize, departmentID, keyword)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "total", res.Total, "page", res.PageNum, "records", len(res.Records))
	v1.WriteOK(w, r, res)
}
