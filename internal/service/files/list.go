package files

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

// FileList — постраничный список файлов с опциональными фильтрами по
// факультету и ключевому слову (регистрозависимый substring по имени).
func (s *Service) FileList(ctx context.Context, pageNum, pageSize int, departmentID *int64, keyword string) (domain.PageResult, error) {
	if pageNum < 1 || pageSize < 1 {
		return domain.PageResult{}, domain.Validationf("pageNum and pageSize must be >= 1")
	}

	filter := domain.FileFilter{DepartmentID: departmentID, Keyword: keyword}

	ckey := s.listCacheKey(ctx, pageNum, pageSize, filter)
	if ckey != "" {
		if b, err := s.cache.Get(ctx, ckey); err == nil && len(b) > 0 {
			var cached domain.PageResult
			if err := json.Unmarshal(b, &cached); err == nil {
				return cached, nil
			}
		}
	}

	offset := (pageNum - 1) * pageSize
	records, err := s.files.FileList(ctx, offset, pageSize, filter)
	if err != nil {
		return domain.PageResult{}, fmt.Errorf("%w: select file list: %v", domain.ErrPersistence, err)
	}
	total, err := s.files.FileTotal(ctx, filter)
	if err != nil {
		return domain.PageResult{}, fmt.Errorf("%w: select file total: %v", domain.ErrPersistence, err)
	}
	if records == nil {
		records = []domain.FileView{}
	}

	res := domain.PageResult{
		Total:    total,
		Records:  records,
		PageNum:  pageNum,
		PageSize: pageSize,
	}

	if ckey != "" {
		if buf, err := json.Marshal(res); err == nil {
			_ = s.cache.Set(ctx, ckey, buf, s.listTTL)
		}
	}
	return res, nil
}

// listCacheKey строит стабильный ключ странички, версионируемый счётчиком
// filelist:ver — после загрузки нового файла старые ключи перестают
// попадать в горячий набор. Пустая строка — кэш выключен/недоступен.
func (s *Service) listCacheKey(ctx context.Context, pageNum, pageSize int, f domain.FileFilter) string {
	if s.cache == nil {
		return ""
	}

	var ver int64
	if b, err := s.cache.Get(ctx, domain.CacheKeyFileListVer()); err != nil {
		return ""
	} else if len(b) > 0 {
		if n, perr := strconv.ParseInt(string(b), 10, 64); perr == nil {
			ver = n
		}
	}

	dep := "nil"
	if f.DepartmentID != nil {
		dep = strconv.FormatInt(*f.DepartmentID, 10)
	}
	raw := fmt.Sprintf("page=%d&size=%d&dep=%s&kw=%s", pageNum, pageSize, dep, f.Keyword)
	sum := sha256.Sum256([]byte(raw))
	return domain.CacheKeyFileList(ver, hex.EncodeToString(sum[:8]))
}
