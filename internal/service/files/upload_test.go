package files

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

// fakeCache — in-memory реализация domain.Cache для тестов листинга/версий.
type fakeCache struct {
	mu    sync.Mutex
	data  map[string][]byte
	incrs map[string]int64

	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte), incrs: make(map[string]int64)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.data[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, val []byte, _ int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = val
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.incrs[key]++
	c.data[key] = []byte(strconv.FormatInt(c.incrs[key], 10))
	return c.incrs[key], nil
}

func (c *fakeCache) Ping(context.Context) error { return nil }
func (c *fakeCache) Close()                     {}

func dep(id int64) *int64 { return &id }

func TestUploadMaterial_Validation(t *testing.T) {
	t.Parallel()

	repo := newFakeFilesRepo()
	st := &fakeStorage{}
	svc := newTestService(repo, st, nil)
	userID := uuid.New()

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UploadMaterial(context.Background(), nil, 0, "a.pdf", "title", dep(1), userID)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "upload file must not be empty")
	})

	t.Run("blank title", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UploadMaterial(context.Background(), strings.NewReader("x"), 1, "a.pdf", "   ", dep(1), userID)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "file title must not be blank")
	})

	t.Run("missing department", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UploadMaterial(context.Background(), strings.NewReader("x"), 1, "a.pdf", "title", nil, userID)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "department is required")
	})

	// ни одна невалидная попытка не должна дойти до хранилища
	assert.Empty(t, st.putKeys)
}

func TestUploadMaterial_OK(t *testing.T) {
	t.Parallel()

	repo := newFakeFilesRepo()
	st := &fakeStorage{}
	cache := newFakeCache()
	svc := newTestService(repo, st, cache)
	userID := uuid.New()

	id, err := svc.UploadMaterial(context.Background(), strings.NewReader("content"), 7, "Курсовая.DOCX", "Курсовая по матанализу", dep(42), userID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	require.Len(t, repo.inserted, 1)
	ins := repo.inserted[0]
	assert.Equal(t, userID, ins.UserID)
	assert.EqualValues(t, 42, ins.DepartmentID)
	assert.Equal(t, "Курсовая.DOCX", ins.FileName)
	assert.Equal(t, "docx", ins.FileType)

	// ключ в бакете — под префиксом материалов, оригинальное имя не входит
	require.Len(t, st.putKeys, 1)
	assert.True(t, strings.HasPrefix(st.putKeys[0], string(domain.CategoryFile)))
	assert.NotContains(t, st.putKeys[0], "Курсовая")
	assert.Equal(t, ins.StorageKey, st.putKeys[0])

	// загрузка поднимает версию кэша списков
	assert.EqualValues(t, 1, cache.incrs[domain.CacheKeyFileListVer()])
}

func TestUploadMaterial_StorageFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeFilesRepo()
	st := &fakeStorage{putErr: errors.New("bucket unavailable")}
	svc := newTestService(repo, st, nil)

	_, err := svc.UploadMaterial(context.Background(), strings.NewReader("x"), 1, "a.pdf", "t", dep(1), uuid.New())
	require.ErrorIs(t, err, domain.ErrStorage)
	assert.Empty(t, repo.inserted)
}

func TestUploadMaterial_InsertFailureLeavesBlob(t *testing.T) {
	t.Parallel()

	repo := newFakeFilesRepo()
	repo.insertErr = errors.New("relation does not exist")
	st := &fakeStorage{}
	svc := newTestService(repo, st, nil)

	_, err := svc.UploadMaterial(context.Background(), strings.NewReader("x"), 1, "a.pdf", "t", dep(1), uuid.New())
	require.ErrorIs(t, err, domain.ErrPersistence)
	// blob уже в бакете, отката нет
	assert.Len(t, st.putKeys, 1)
}

func TestUploadAvatar_OK(t *testing.T) {
	t.Parallel()

	repo := newFakeFilesRepo()
	st := &fakeStorage{baseURL: "http://minio:9000/kaola"}
	svc := newTestService(repo, st, nil)

	url, err := svc.UploadAvatar(context.Background(), strings.NewReader("img"), 3, "me.PNG")
	require.NoError(t, err)

	require.Len(t, st.putKeys, 1)
	assert.True(t, strings.HasPrefix(st.putKeys[0], string(domain.CategoryImage)))
	assert.Equal(t, "http://minio:9000/kaola/"+st.putKeys[0], url)
}

func TestUploadAvatar_Empty(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeFilesRepo(), &fakeStorage{}, nil)
	_, err := svc.UploadAvatar(context.Background(), nil, 0, "me.png")
	require.ErrorIs(t, err, domain.ErrValidation)
}
