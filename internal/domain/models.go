package domain

import (
	"time"

	"github.com/google/uuid"
)

// Базовые идентификаторы
type UserID = uuid.UUID
type FileID = uuid.UUID

// Пользователь
type User struct {
	ID        UserID    `json:"id"`
	Username  string    `json:"username"`
	PassHash  string    `json:"-"` // argon2id, никогда не отдаём наружу
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Метаданные файла (учебного материала).
// После создания мутируется только download_count, и только атомарным
// инкрементом на стороне БД.
type File struct {
	ID            FileID    `json:"id"`
	UserID        UserID    `json:"userId"`       // кто загрузил
	DepartmentID  int64     `json:"departmentId"` // факультет/отдел
	FileName      string    `json:"fileName"`     // оригинальное имя с расширением
	StorageKey    string    `json:"-"`            // непрозрачный ключ в S3
	FileType      string    `json:"fileType"`     // расширение в lower-case, без точки
	DownloadCount int64     `json:"downloadCount"`
	CreatedAt     time.Time `json:"createTime"`
}

// Строка списка файлов: то, что видит фронт в /file/list
type FileView struct {
	ID              FileID `json:"id"`
	FileName        string `json:"fileName"`
	ContributorName string `json:"contributorName"` // username загрузившего
	FileType        string `json:"fileType"`
}

// Страница списка файлов
type PageResult struct {
	Total    int64      `json:"total"`
	Records  []FileView `json:"records"`
	PageNum  int        `json:"pageNum"`
	PageSize int        `json:"pageSize"`
}
