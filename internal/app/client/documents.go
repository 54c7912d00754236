package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/exp/slog"

	"docui/internal/app/client/api"
	"docui/internal/app/client/config"
	"docui/internal/domain/document"
)

// ErrUploadInFlight возвращается при попытке начать вторую загрузку,
// пока первая не завершилась. Второй файл отклоняется без обращения
// к серверу.
var ErrUploadInFlight = errors.New("загрузка уже выполняется")

// ErrNothingSelected возвращается при подтверждении удаления без
// выбранной записи.
var ErrNothingSelected = errors.New("запись для удаления не выбрана")

// DocumentsAPI - операции удаленного API, нужные экрану документов.
type DocumentsAPI interface {
	ListDocuments(ctx context.Context, limit int, prefix string) ([]document.Record, error)
	UploadDocument(ctx context.Context, filename string, content io.Reader) (*document.UploadResponse, error)
	DeleteDocument(ctx context.Context, id string) (*document.DeleteResponse, error)
	DownloadSource(ctx context.Context, id string) (*document.DownloadResult, error)
	DownloadParsed(ctx context.Context, id string) (*document.DownloadResult, error)
}

// DocumentsScreen - состояние экрана документов: список, выбор записи
// на удаление и текущая загрузка файла.
type DocumentsScreen struct {
	api DocumentsAPI
	cfg *config.Config
	log *slog.Logger
	inv *Invalidator
	res *Resource[[]document.Record]

	mu            sync.Mutex
	limit         int
	prefix        string
	pendingDelete string
	uploading     bool
	errMessage    string
}

func NewDocumentsScreen(apiClient DocumentsAPI, cfg *config.Config, log *slog.Logger, inv *Invalidator) *DocumentsScreen {
	s := &DocumentsScreen{
		api: apiClient,
		cfg: cfg,
		log: log.With("screen", ResourceDocuments),
		inv: inv,
	}

	s.res = NewResource(ResourceDocuments, func(ctx context.Context) ([]document.Record, error) {
		s.mu.Lock()
		limit, prefix := s.limit, s.prefix
		s.mu.Unlock()
		return s.api.ListDocuments(ctx, limit, prefix)
	})

	// После инвалидации список перечитывается целиком, прежний снимок
	// отбрасывается.
	inv.Subscribe(ResourceDocuments, func() {
		if err := s.res.Load(context.Background()); err != nil {
			s.setError(err)
		}
	})

	return s
}

// SetFilter задает параметры списка для последующих загрузок.
func (s *DocumentsScreen) SetFilter(limit int, prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = limit
	s.prefix = prefix
}

// Open выполняет первичную загрузку списка.
func (s *DocumentsScreen) Open(ctx context.Context) error {
	if err := s.res.Load(ctx); err != nil {
		s.setError(err)
		return err
	}
	s.clearError()
	return nil
}

// Documents возвращает текущий снимок списка.
func (s *DocumentsScreen) Documents() ([]document.Record, State, error) {
	return s.res.Snapshot()
}

// SelectForDelete помечает запись на удаление. Повторный выбор заменяет
// предыдущий, очередь не накапливается.
func (s *DocumentsScreen) SelectForDelete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = id
}

// PendingDelete возвращает идентификатор записи, ожидающей подтверждения.
func (s *DocumentsScreen) PendingDelete() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingDelete
}

// CancelDelete снимает отметку удаления.
func (s *DocumentsScreen) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = ""
}

// ConfirmDelete удаляет отмеченную запись. Список инвалидируется только
// после завершения мутации, поэтому повторная загрузка видит ее результат.
func (s *DocumentsScreen) ConfirmDelete(ctx context.Context) (*document.DeleteResponse, error) {
	s.mu.Lock()
	id := s.pendingDelete
	s.pendingDelete = ""
	s.mu.Unlock()

	if id == "" {
		return nil, ErrNothingSelected
	}

	resp, err := s.api.DeleteDocument(ctx, id)
	if err != nil {
		s.setError(err)
		return nil, err
	}

	s.clearError()
	s.inv.Invalidate(ResourceDocuments)
	return resp, nil
}

// Upload загружает один файл. Одновременно допускается только одна
// загрузка; размер и тип файла проверяются до обращения к серверу.
func (s *DocumentsScreen) Upload(ctx context.Context, path string) (*document.UploadResponse, error) {
	s.mu.Lock()
	if s.uploading {
		s.mu.Unlock()
		return nil, ErrUploadInFlight
	}
	s.uploading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.uploading = false
		s.mu.Unlock()
	}()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("файл недоступен: %w", err)
	}
	if info.Size() > s.cfg.MaxFileSize {
		return nil, &api.ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("размер файла %d байт превышает лимит %d байт", info.Size(), s.cfg.MaxFileSize),
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	resp, err := s.api.UploadDocument(ctx, filepath.Base(path), file)
	if err != nil {
		s.setError(err)
		return nil, err
	}

	s.clearError()
	s.inv.Invalidate(ResourceDocuments)
	return resp, nil
}

// Uploading сообщает, выполняется ли загрузка прямо сейчас.
func (s *DocumentsScreen) Uploading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploading
}

// Download скачивает одну из форм документа. Ошибка скачивания одной
// строки не трогает состояние списка.
func (s *DocumentsScreen) Download(ctx context.Context, id string, kind document.Kind) (*document.DownloadResult, error) {
	var (
		result *document.DownloadResult
		err    error
	)

	switch kind {
	case document.KindParsed:
		result, err = s.api.DownloadParsed(ctx, id)
	default:
		result, err = s.api.DownloadSource(ctx, id)
	}

	if err != nil {
		s.log.Debug("Ошибка скачивания", "id", id, "kind", string(kind), "error", err)
		return nil, err
	}
	return result, nil
}

// SaveDownload записывает скачанный файл в директорию dir и возвращает
// итоговый путь.
func (s *DocumentsScreen) SaveDownload(result *document.DownloadResult, dir string) (string, error) {
	if dir == "" {
		dir = s.cfg.DownloadDir
	}

	path := filepath.Join(dir, filepath.Base(result.Filename))
	if err := os.WriteFile(path, result.Data, 0644); err != nil {
		return "", fmt.Errorf("ошибка сохранения файла: %w", err)
	}
	return path, nil
}

// ErrorMessage возвращает последнее сообщение об ошибке для отображения.
func (s *DocumentsScreen) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMessage
}

// Close сбрасывает состояние экрана; результаты незавершенных загрузок
// отбрасываются.
func (s *DocumentsScreen) Close() {
	s.res.Reset()
	s.mu.Lock()
	s.pendingDelete = ""
	s.errMessage = ""
	s.mu.Unlock()
}

func (s *DocumentsScreen) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = userMessage(err)
}

func (s *DocumentsScreen) clearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = ""
}
