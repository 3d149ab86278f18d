package files

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

// UploadMaterial загружает учебный материал: контент в S3 под files/,
// метаданные в БД. Возвращает id новой записи.
//
// Blob при ошибке вставки метаданных не откатывается: осиротевший объект
// в хранилище — принятый риск.
func (s *Service) UploadMaterial(ctx context.Context, r io.Reader, size int64, originalFilename, title string, departmentID *int64, userID domain.UserID) (domain.FileID, error) {
	if r == nil || size <= 0 {
		return domain.FileID{}, domain.Validationf("upload file must not be empty")
	}
	if strings.TrimSpace(title) == "" {
		return domain.FileID{}, domain.Validationf("file title must not be blank")
	}
	if departmentID == nil {
		return domain.FileID{}, domain.Validationf("department is required")
	}

	key, err := s.storage.Put(ctx, r, size, originalFilename, domain.CategoryFile)
	if err != nil {
		return domain.FileID{}, fmt.Errorf("%w: put material: %v", domain.ErrStorage, err)
	}

	f, err := s.files.InsertFile(ctx, domain.File{
		UserID:       userID,
		DepartmentID: *departmentID,
		FileName:     originalFilename,
		StorageKey:   key,
		FileType:     fileExt(originalFilename),
	})
	if err != nil {
		s.log.Printf("insert file meta failed, blob %q orphaned: %v", key, err)
		return domain.FileID{}, fmt.Errorf("%w: insert file: %v", domain.ErrPersistence, err)
	}

	s.bumpListVersion(ctx)
	s.log.Printf("material uploaded id=%s key=%s name=%q", f.ID, key, f.FileName)
	return f.ID, nil
}

// UploadAvatar кладёт картинку под images/ и возвращает публичный URL.
// Проверка content-type (только jpeg/jpg/png) живёт на краю, в HTTP-хендлере.
func (s *Service) UploadAvatar(ctx context.Context, r io.Reader, size int64, originalFilename string) (string, error) {
	if r == nil || size <= 0 {
		return "", domain.Validationf("upload file must not be empty")
	}

	key, err := s.storage.Put(ctx, r, size, originalFilename, domain.CategoryImage)
	if err != nil {
		return "", fmt.Errorf("%w: put avatar: %v", domain.ErrStorage, err)
	}

	url := s.storage.PublicURL(key)
	s.log.Printf("avatar uploaded key=%s url=%s", key, url)
	return url, nil
}

// bumpListVersion инвалидирует кэш списков: версия растёт, старые ключи
// умирают по TTL.
func (s *Service) bumpListVersion(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Incr(ctx, domain.CacheKeyFileListVer()); err != nil {
		s.log.Printf("bump file list version failed: %v", err)
	}
}
