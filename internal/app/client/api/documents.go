package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"docui/internal/domain/document"
)

// DefaultListLimit ограничивает размер списка документов, если вызывающий
// не задал лимит явно.
const DefaultListLimit = 50

// ListDocuments возвращает список документов. Оба параметра запроса
// отправляются всегда: limit со значением по умолчанию 50, prefix пустым.
func (c *Client) ListDocuments(ctx context.Context, limit int, prefix string) ([]document.Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("prefix", prefix)

	resp, err := c.doRequest(ctx, http.MethodGet, "/documents/", query, nil, "")
	if err != nil {
		return nil, err
	}

	var records []document.Record
	if err := c.parseResponse(resp, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// UploadDocument загружает один файл multipart-запросом с единственной
// частью file. Тип файла проверяется до обращения к сети.
func (c *Client) UploadDocument(ctx context.Context, filename string, content io.Reader) (*document.UploadResponse, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if !c.config.TypeAllowed(ext) {
		return nil, &ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("тип файла %q не входит в список разрешенных (%s)", ext, strings.Join(c.config.AllowedFileTypes, ", ")),
		}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования multipart-запроса: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("ошибка чтения файла: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("ошибка формирования multipart-запроса: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/upload/", nil, &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var uploadResp document.UploadResponse
	if err := c.parseResponse(resp, &uploadResp); err != nil {
		return nil, err
	}

	return &uploadResp, nil
}

// DeleteDocument удаляет документ по идентификатору. Повторное удаление
// не идемпотентно: ответ сервера (обычно 404) доходит до вызывающего
// с сохраненным статусом.
func (c *Client) DeleteDocument(ctx context.Context, id string) (*document.DeleteResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/documents/"+url.PathEscape(id), nil, nil, "")
	if err != nil {
		return nil, err
	}

	var deleteResp document.DeleteResponse
	if err := c.parseResponse(resp, &deleteResp); err != nil {
		return nil, err
	}

	return &deleteResp, nil
}

// DownloadSource скачивает исходную форму документа.
func (c *Client) DownloadSource(ctx context.Context, id string) (*document.DownloadResult, error) {
	return c.download(ctx, id, document.KindSource)
}

// DownloadParsed скачивает разобранную (markdown) форму документа.
func (c *Client) DownloadParsed(ctx context.Context, id string) (*document.DownloadResult, error) {
	return c.download(ctx, id, document.KindParsed)
}

func (c *Client) download(ctx context.Context, id string, kind document.Kind) (*document.DownloadResult, error) {
	path := fmt.Sprintf("/documents/%s/%s", url.PathEscape(id), kind)

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, statusError(resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Kind: KindNetwork, Detail: "ошибка чтения содержимого", Err: err}
	}

	// Имя файла берем из Content-Disposition; его отсутствие - не ошибка,
	// в этом случае подставляется идентификатор документа.
	filename, ok := filenameFromDisposition(resp.Header.Get("Content-Disposition"))
	if !ok {
		filename = id
		if kind == document.KindParsed {
			filename = id + ".md"
		}
	}

	return &document.DownloadResult{
		Filename: filename,
		Data:     data,
	}, nil
}
