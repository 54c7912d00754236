package client

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"

	"docui/internal/domain/user"
)

// UsersAPI - операции удаленного API, нужные экрану пользователей.
type UsersAPI interface {
	ListUsers(ctx context.Context) ([]user.Record, error)
	DeleteUser(ctx context.Context, id string) (*user.DeleteResponse, error)
}

// UsersScreen - состояние экрана пользователей. Экраны документов и
// пользователей полностью независимы и могут загружаться одновременно.
type UsersScreen struct {
	api UsersAPI
	log *slog.Logger
	inv *Invalidator
	res *Resource[[]user.Record]

	mu            sync.Mutex
	pendingDelete string
	errMessage    string
}

func NewUsersScreen(apiClient UsersAPI, log *slog.Logger, inv *Invalidator) *UsersScreen {
	s := &UsersScreen{
		api: apiClient,
		log: log.With("screen", ResourceUsers),
		inv: inv,
	}

	s.res = NewResource(ResourceUsers, func(ctx context.Context) ([]user.Record, error) {
		return s.api.ListUsers(ctx)
	})

	inv.Subscribe(ResourceUsers, func() {
		if err := s.res.Load(context.Background()); err != nil {
			s.setError(err)
		}
	})

	return s
}

// Open выполняет первичную загрузку списка.
func (s *UsersScreen) Open(ctx context.Context) error {
	if err := s.res.Load(ctx); err != nil {
		s.setError(err)
		return err
	}
	s.clearError()
	return nil
}

// Users возвращает текущий снимок списка.
func (s *UsersScreen) Users() ([]user.Record, State, error) {
	return s.res.Snapshot()
}

// SelectForDelete помечает пользователя на удаление, заменяя предыдущий
// выбор.
func (s *UsersScreen) SelectForDelete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = id
}

// PendingDelete возвращает идентификатор, ожидающий подтверждения.
func (s *UsersScreen) PendingDelete() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingDelete
}

// CancelDelete снимает отметку удаления.
func (s *UsersScreen) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = ""
}

// ConfirmDelete удаляет отмеченного пользователя и инвалидирует список
// после завершения мутации.
func (s *UsersScreen) ConfirmDelete(ctx context.Context) (*user.DeleteResponse, error) {
	s.mu.Lock()
	id := s.pendingDelete
	s.pendingDelete = ""
	s.mu.Unlock()

	if id == "" {
		return nil, ErrNothingSelected
	}

	resp, err := s.api.DeleteUser(ctx, id)
	if err != nil {
		s.setError(err)
		return nil, err
	}

	s.clearError()
	s.inv.Invalidate(ResourceUsers)
	return resp, nil
}

// ErrorMessage возвращает последнее сообщение об ошибке для отображения.
func (s *UsersScreen) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMessage
}

// Close сбрасывает состояние экрана.
func (s *UsersScreen) Close() {
	s.res.Reset()
	s.mu.Lock()
	s.pendingDelete = ""
	s.errMessage = ""
	s.mu.Unlock()
}

func (s *UsersScreen) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = userMessage(err)
}

func (s *UsersScreen) clearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = ""
}
