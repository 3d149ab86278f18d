package user

import (
	"log"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/service/users"
)

type Handler struct {
	Log   *log.Logger
	Users *users.Service
}
