package files

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

func listRows(n int) []domain.FileView {
	rows := make([]domain.FileView, n)
	for i := range rows {
		rows[i] = domain.FileView{
			ID:              uuid.New(),
			FileName:        fmt.Sprintf("file-%02d.pdf", i),
			ContributorName: "alice",
			FileType:        "pdf",
		}
	}
	return rows
}

func TestFileList_Pagination(t *testing.T) {
	t.Parallel()

	repo := newFakeFilesRepo()
	repo.listRows = listRows(25)
	svc := newTestService(repo, &fakeStorage{}, nil)

	t.Run("first page full", func(t *testing.T) {
		t.Parallel()
		res, err := svc.FileList(context.Background(), 1, 10, nil, "")
		require.NoError(t, err)
		assert.EqualValues(t, 25, res.Total)
		assert.Len(t, res.Records, 10)
		assert.Equal(t, "file-00.pdf", res.Records[0].FileName)
		assert.Equal(t, 1, res.PageNum)
		assert.Equal(t, 10, res.PageSize)
	})

	t.Run("last page partial", func(t *testing.T) {
		t.Parallel()
		res, err := svc.FileList(context.Background(), 3, 10, nil, "")
		require.NoError(t, err)
		assert.EqualValues(t, 25, res.Total)
		assert.Len(t, res.Records, 5)
		assert.Equal(t, "file-20.pdf", res.Records[0].FileName)
	})

	t.Run("page beyond data is empty, not nil", func(t *testing.T) {
		t.Parallel()
		res, err := svc.FileList(context.Background(), 9, 10, nil, "")
		require.NoError(t, err)
		require.NotNil(t, res.Records)
		assert.Empty(t, res.Records)
		assert.EqualValues(t, 25, res.Total)
	})
}

func TestFileList_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeFilesRepo(), &fakeStorage{}, nil)

	for _, tc := range [][2]int{{0, 10}, {1, 0}, {-1, -1}} {
		_, err := svc.FileList(context.Background(), tc[0], tc[1], nil, "")
		require.ErrorIs(t, err, domain.ErrValidation, "pageNum=%d pageSize=%d", tc[0], tc[1])
	}
}

func TestFileList_RepoFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeFilesRepo()
	repo.listErr = errors.New("connection reset")
	svc := newTestService(repo, &fakeStorage{}, nil)

	_, err := svc.FileList(context.Background(), 1, 10, nil, "")
	require.ErrorIs(t, err, domain.ErrPersistence)
}

func TestFileList_CacheRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newFakeFilesRepo()
	repo.listRows = listRows(3)
	cache := newFakeCache()
	svc := newTestService(repo, &fakeStorage{}, cache)

	first, err := svc.FileList(context.Background(), 1, 10, nil, "")
	require.NoError(t, err)

	// вторая выборка идёт из кэша: репозиторий можно сломать
	repo.mu.Lock()
	repo.listErr = errors.New("db is down")
	repo.mu.Unlock()

	second, err := svc.FileList(context.Background(), 1, 10, nil, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileList_UploadInvalidatesCache(t *testing.T) {
	t.Parallel()

	repo := newFakeFilesRepo()
	repo.listRows = listRows(2)
	cache := newFakeCache()
	st := &fakeStorage{}
	svc := newTestService(repo, st, cache)

	_, err := svc.FileList(context.Background(), 1, 10, nil, "")
	require.NoError(t, err)

	// новая загрузка поднимает версию — следующий листинг мимо старого ключа
	_, err = svc.UploadMaterial(context.Background(), strings.NewReader("x"), 1, "new.pdf", "t", dep(1), uuid.New())
	require.NoError(t, err)

	repo.mu.Lock()
	repo.listRows = listRows(3)
	repo.mu.Unlock()

	res, err := svc.FileList(context.Background(), 1, 10, nil, "")
	require.NoError(t, err)
	assert.Len(t, res.Records, 3)
}
