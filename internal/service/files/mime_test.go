package files

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeFor(t *testing.T) {
	t.Parallel()

	for ext, want := range map[string]string{
		"pdf":  "application/pdf",
		"doc":  "application/msword",
		"docx": "application/msword",
		"xls":  "application/vnd.ms-excel",
		"xlsx": "application/vnd.ms-excel",
		"ppt":  "application/vnd.ms-powerpoint",
		"pptx": "application/vnd.ms-powerpoint",
		"zip":  "application/zip",
		"rar":  "application/x-rar-compressed",
		"txt":  "text/plain",
		"jpg":  "image/jpeg",
		"jpeg": "image/jpeg",
		"png":  "image/png",
	} {
		assert.Equal(t, want, contentTypeFor(ext), ext)
	}

	// неизвестные и пустые — octet-stream
	assert.Equal(t, "application/octet-stream", contentTypeFor("exe"))
	assert.Equal(t, "application/octet-stream", contentTypeFor(""))
	// регистр расширения не важен
	assert.Equal(t, "application/pdf", contentTypeFor("PDF"))
}
