package file

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
	"github.com/WylKeepStudy/KaoLaShare-backend/internal/service/files"
)

func newAvatarServer(t *testing.T, st *stubStorage) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	h := &Handler{Log: logger, Files: files.New(logger, &stubRepo{}, st, nil, 0)}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /file/upload/avatar", h.UploadAvatar)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// multipart-форма с одним файлом и явным Content-Type части
func avatarForm(t *testing.T, filename, contentType, content string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestUploadAvatarHandler_AcceptsImages(t *testing.T) {
	t.Parallel()

	for _, ct := range []string{"image/png", "image/jpeg", "image/jpg"} {
		t.Run(ct, func(t *testing.T) {
			t.Parallel()

			st := &stubStorage{}
			srv := newAvatarServer(t, st)

			body, formCT := avatarForm(t, "me.png", ct, "binary-image-bytes")
			resp, err := http.Post(srv.URL+"/file/upload/avatar", formCT, body)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)

			var env domain.Result
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
			assert.Equal(t, 200, env.Code)

			url, ok := env.Data.(string)
			require.True(t, ok)
			assert.True(t, strings.Contains(url, string(domain.CategoryImage)))
		})
	}
}

func TestUploadAvatarHandler_RejectsNonImage(t *testing.T) {
	t.Parallel()

	for _, ct := range []string{"application/pdf", "application/octet-stream", "text/html"} {
		t.Run(ct, func(t *testing.T) {
			t.Parallel()

			st := &stubStorage{}
			srv := newAvatarServer(t, st)

			body, formCT := avatarForm(t, "evil.pdf", ct, "%PDF-1.7")
			resp, err := http.Post(srv.URL+"/file/upload/avatar", formCT, body)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var env domain.Result
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
			assert.Equal(t, 400, env.Code)
			assert.Equal(t, "only jpg, jpeg and png images are allowed", env.Msg)
		})
	}
}

func TestUploadAvatarHandler_MissingFile(t *testing.T) {
	t.Parallel()

	srv := newAvatarServer(t, &stubStorage{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/file/upload/avatar", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
