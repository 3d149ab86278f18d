package domain

import "context"

type UsersRepo interface {
	Close()
	Ping(context.Context) error
	CreateUser(ctx context.Context, username, passHash, avatarURL string) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	UserByID(ctx context.Context, id UserID) (User, error)
}

// Фильтры списка: nil/пустое значение — без фильтрации по этому измерению.
// Keyword — регистрозависимый substring-match по имени файла.
type FileFilter struct {
	DepartmentID *int64
	Keyword      string
}

type FilesRepo interface {
	FileByID(ctx context.Context, id FileID) (File, error)
	// Атомарный UPDATE ... SET download_count = download_count + 1:
	// инкремент нельзя делать через read-modify-write в приложении.
	IncrementDownloadCount(ctx context.Context, id FileID) error
	InsertFile(ctx context.Context, f File) (File, error)
	FileList(ctx context.Context, offset, limit int, f FileFilter) ([]FileView, error)
	FileTotal(ctx context.Context, f FileFilter) (int64, error)
}
