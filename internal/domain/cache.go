package domain

import (
	"context"
	"fmt"
)

// Ключи кеша — единое место, чтобы не расползались по коду.
func CacheKeyFileListVer() string { return "filelist:ver" }
func CacheKeyFileList(ver int64, pageKey string) string {
	return fmt.Sprintf("filelist:%d:%s", ver, pageKey) // pageKey = хэш фильтров/пагинации
}

// Простой k/v интерфейс. Реализация — Redis.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
	// Для инкрементируемых версий списков (выборочная инвалидация)
	Incr(ctx context.Context, key string) (int64, error)
	Ping(context.Context) error
	Close()
}
