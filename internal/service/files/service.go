package files

import (
	"log"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

// Service — бизнес-логика файлов: загрузка, листинг и ядро скачивания.
type Service struct {
	log     *log.Logger
	files   domain.FilesRepo
	storage domain.BlobStorage
	cache   domain.Cache // может быть nil, тогда листинг ходит мимо кэша

	listTTL int // секунд
}

func New(logger *log.Logger, files domain.FilesRepo, storage domain.BlobStorage, cache domain.Cache, listTTL int) *Service {
	return &Service{
		log:     logger,
		files:   files,
		storage: storage,
		cache:   cache,
		listTTL: listTTL,
	}
}
