package files

import "strings"

// Таблица Content-Type по расширению (без точки, lower-case).
var contentTypes = map[string]string{
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
}

func contentTypeFor(ext string) string {
	if ct, ok := contentTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return "application/octet-stream"
}
