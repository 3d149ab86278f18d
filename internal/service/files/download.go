package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

// Descriptor — всё, что нужно для отдачи одного файла клиенту.
// Владеет открытым ByteSource: после успешного Prepare вызывающий обязан
// либо дотянуть StreamTo до конца, либо позвать Release сам.
type Descriptor struct {
	FileName      string
	FileType      string // расширение в lower-case, без точки
	ContentLength int64  // -1, если хранилище не сообщило длину

	src domain.ByteSource
	log *log.Logger
}

// Prepare готовит скачивание: метаданные, инкремент счётчика, открытие
// потока из хранилища.
//
// Счётчик считает попытки, а не завершённые передачи: инкремент идёт до
// потока, его собственная ошибка логируется и не прерывает скачивание.
func (s *Service) Prepare(ctx context.Context, id domain.FileID) (*Descriptor, error) {
	f, err := s.files.FileByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: file lookup: %v", domain.ErrPersistence, err)
	}

	if err := s.files.IncrementDownloadCount(ctx, f.ID); err != nil {
		s.log.Printf("increment download count id=%s failed: %v", f.ID, err)
	}

	src, err := s.storage.Get(ctx, f.StorageKey)
	if err != nil {
		// частично построенный источник шлюз освобождает сам
		return nil, fmt.Errorf("%w: get %q: %v", domain.ErrStorage, f.StorageKey, err)
	}

	return &Descriptor{
		FileName:      f.FileName,
		FileType:      fileExt(f.FileName),
		ContentLength: src.ContentLength(),
		src:           src,
		log:           s.log,
	}, nil
}

// StreamTo копирует контент в sink до конца или до первой ошибки.
// ByteSource освобождается ровно один раз на любом исходе: успех, ошибка
// копирования, обрыв клиента. Повторных попыток нет — байты уже могли
// уйти клиенту, пусть он инициирует новое скачивание.
func (d *Descriptor) StreamTo(w io.Writer) (written int64, err error) {
	defer func() {
		if rerr := d.Release(); rerr != nil {
			d.log.Printf("release byte source for %q: %v", d.FileName, rerr)
			if err == nil {
				err = rerr
			}
		}
	}()

	written, err = io.Copy(w, d.src)
	return written, err
}

// Release освобождает источник. Идемпотентен (гарантия ByteSource).
func (d *Descriptor) Release() error { return d.src.Release() }

// ContentType по статической таблице расширений; всё неизвестное —
// application/octet-stream.
func (d *Descriptor) ContentType() string { return contentTypeFor(d.FileType) }

// ContentDisposition — attachment с percent-encoded именем файла, чтобы
// пробелы и UTF-8 пережили транспорт.
func (d *Descriptor) ContentDisposition() string {
	encoded := strings.ReplaceAll(url.QueryEscape(d.FileName), "+", "%20")
	return fmt.Sprintf(`attachment; filename="%s"`, encoded)
}

// fileExt — подстрока после последней точки, в lower-case. Пустая строка,
// если точки нет или она последняя: "report.PDF" -> "pdf",
// "archive.tar.gz" -> "gz", "noext" -> "", "trailing." -> "".
func fileExt(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
