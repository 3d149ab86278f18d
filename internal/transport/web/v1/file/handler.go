package file

import (
	"log"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/service/files"
)

type Handler struct {
	Log   *log.Logger
	Files *files.Service
}

// лимит multipart-формы
const maxUploadBytes = 64 << 20
