package api

import (
	"mime"
)

// filenameFromDisposition извлекает имя файла из заголовка
// Content-Disposition вида `attachment; filename="report.pdf"`.
// Возвращает false, если заголовок отсутствует или не содержит имени.
func filenameFromDisposition(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return "", false
	}

	if name := params["filename"]; name != "" {
		return name, true
	}
	return "", false
}
