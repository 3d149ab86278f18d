package domain

import (
	"context"
	"io"
)

// Категория загрузки определяет префикс ключа в бакете.
type FileCategory string

const (
	CategoryImage FileCategory = "images/" // аватары
	CategoryFile  FileCategory = "files/"  // учебные материалы
)

// ByteSource — открытый поток контента поверх живого ресурса
// (соединение из пула). Release закрывает сначала поток, затем
// владеющую сессию; повторный вызов — no-op.
type ByteSource interface {
	io.Reader
	// Длина контента в байтах, -1 если неизвестна.
	ContentLength() int64
	Release() error
}

// Хранилище бинарного контента (S3/MinIO).
type BlobStorage interface {
	// Put сохраняет контент под свежим, устойчивым к коллизиям ключом
	// с префиксом категории. Оригинальное имя используется только для
	// сохранения расширения.
	Put(ctx context.Context, r io.Reader, size int64, originalFilename string, cat FileCategory) (storageKey string, err error)
	// Get открывает ByteSource по ключу. Владение источником переходит
	// вызывающему, если err == nil.
	Get(ctx context.Context, storageKey string) (ByteSource, error)
	// Публичный URL объекта (для аватаров).
	PublicURL(storageKey string) string
}
