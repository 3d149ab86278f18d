package s3

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

type Storage struct {
	cl     *minio.Client
	bucket string
	log    *log.Logger
}

func New(ctx context.Context, cfg Config, logger *log.Logger) (*Storage, error) {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}
	cl, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, err
	}
	return &Storage{cl: cl, bucket: cfg.Bucket, log: logger}, nil
}

var _ domain.BlobStorage = (*Storage)(nil)

// Put загружает контент под свежим ключом вида "<категория><uuid><.ext>".
// Оригинальное имя файла отбрасывается (приватность и отсутствие коллизий),
// сохраняется только расширение.
func (s *Storage) Put(ctx context.Context, r io.Reader, size int64, originalFilename string, cat domain.FileCategory) (string, error) {
	ext := strings.ToLower(path.Ext(originalFilename)) // с точкой, может быть пустым
	key := string(cat) + uuid.NewString() + ext

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := s.cl.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.log.Printf("Put %q failed: %v", key, err)
		return "", err
	}
	s.log.Printf("Put ok key=%s size=%d", key, info.Size)
	return key, nil
}

// Get открывает ByteSource по ключу. Ресурс двухуровневый: поток контента
// поверх сессии (контекст, держащий соединение из пула). Если объект
// получен, а Stat по нему падает — частично построенный источник
// освобождается здесь же, до возврата ошибки.
func (s *Storage) Get(ctx context.Context, storageKey string) (domain.ByteSource, error) {
	sessCtx, cancel := context.WithCancel(ctx)

	obj, err := s.cl.GetObject(sessCtx, s.bucket, storageKey, minio.GetObjectOptions{})
	if err != nil {
		cancel()
		s.log.Printf("Get %q failed: %v", storageKey, err)
		return nil, err
	}

	// GetObject ленив: реальная проверка существования — Stat.
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		cancel()
		s.log.Printf("Get %q stat failed: %v", storageKey, err)
		return nil, err
	}

	s.log.Printf("Get ok key=%s size=%d", storageKey, info.Size)
	return &object{
		rc:   obj,
		size: info.Size,
		session: func() error {
			cancel()
			return nil
		},
		log: s.log,
		key: storageKey,
	}, nil
}

// PublicURL — адрес объекта для прямого доступа (аватары).
func (s *Storage) PublicURL(storageKey string) string {
	u := s.cl.EndpointURL()
	return fmt.Sprintf("%s://%s/%s/%s", u.Scheme, u.Host, s.bucket, storageKey)
}

// object реализует domain.ByteSource: поток + владеющая сессия,
// освобождение строго один раз.
type object struct {
	rc      io.ReadCloser
	session func() error
	size    int64
	log     *log.Logger
	key     string
	once    sync.Once
}

func (o *object) Read(p []byte) (int, error) { return o.rc.Read(p) }

func (o *object) ContentLength() int64 { return o.size }

// Release закрывает сначала поток, затем сессию. Ошибка закрытия сессии
// после успешно закрытого потока не пропагируется — только лог.
func (o *object) Release() error {
	var err error
	o.once.Do(func() {
		err = o.rc.Close()
		if serr := o.session(); serr != nil {
			if err == nil {
				o.log.Printf("Release %q: session close failed after stream close: %v", o.key, serr)
			} else {
				err = fmt.Errorf("stream close: %w; session close: %v", err, serr)
			}
		}
	})
	return err
}
