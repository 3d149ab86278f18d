package web

import (
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/service/files"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/service/users"
)

type Services struct {
	Files *files.Service
	Users *users.Service
}
