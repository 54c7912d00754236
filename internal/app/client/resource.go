package client

import (
	"context"
	"sync"
)

// Ключи ресурсов для шины инвалидации.
const (
	ResourceDocuments = "documents"
	ResourceUsers     = "users"
)

// State описывает жизненный цикл загружаемого ресурса.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Invalidator - явная шина подписки на инвалидацию ресурсов по имени.
// Мутация публикует инвалидацию после своего завершения; подписчики
// перевыполняют свой fetch синхронно, поэтому повторная загрузка никогда
// не гонится с мутацией.
type Invalidator struct {
	mu   sync.Mutex
	subs map[string][]func()
}

func NewInvalidator() *Invalidator {
	return &Invalidator{
		subs: make(map[string][]func()),
	}
}

// Subscribe регистрирует обработчик инвалидации для ресурса key.
func (inv *Invalidator) Subscribe(key string, fn func()) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.subs[key] = append(inv.subs[key], fn)
}

// Invalidate уведомляет всех подписчиков ресурса key.
func (inv *Invalidator) Invalidate(key string) {
	inv.mu.Lock()
	handlers := make([]func(), len(inv.subs[key]))
	copy(handlers, inv.subs[key])
	inv.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

// Resource хранит один снимок загруженных данных и его состояние.
// Снимок всегда заменяется целиком, точечных правок нет.
type Resource[T any] struct {
	key   string
	fetch func(ctx context.Context) (T, error)

	mu    sync.RWMutex
	state State
	data  T
	err   error
	gen   uint64
}

func NewResource[T any](key string, fetch func(ctx context.Context) (T, error)) *Resource[T] {
	return &Resource[T]{
		key:   key,
		fetch: fetch,
	}
}

// Load выполняет fetch и заменяет снимок. Если за время запроса ресурс был
// сброшен (экран закрыт), результат отбрасывается, а не применяется.
func (r *Resource[T]) Load(ctx context.Context) error {
	r.mu.Lock()
	r.state = StateLoading
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	data, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.gen != gen {
		// Устаревший результат: экран уже не ждет эти данные.
		return nil
	}

	if err != nil {
		var zero T
		r.state = StateFailed
		r.data = zero
		r.err = err
		return err
	}

	r.state = StateReady
	r.data = data
	r.err = nil
	return nil
}

// Reset возвращает ресурс в исходное состояние и помечает все
// незавершенные загрузки как устаревшие.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	r.gen++
	r.state = StateIdle
	r.data = zero
	r.err = nil
}

// Snapshot возвращает текущий снимок данных, состояние и ошибку.
func (r *Resource[T]) Snapshot() (T, State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data, r.state, r.err
}

// State возвращает текущее состояние ресурса.
func (r *Resource[T]) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}
