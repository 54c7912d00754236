package session

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// CredentialProvider отдает bearer-токен текущей сессии, если она есть.
// Клиент API не знает, откуда берется токен - провайдер внедряется явно.
type CredentialProvider interface {
	Token() (string, bool)
}

// FileStore хранит токен сессии в файле с правами 0600.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Token возвращает сохраненный токен. Отсутствие файла означает
// отсутствие сессии - это не ошибка.
func (s *FileStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Save сохраняет токен сессии.
func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("токен не может быть пустым")
	}

	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}
	return nil
}

// Clear удаляет сохраненный токен.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}
	return nil
}

// StaticProvider отдает фиксированный токен. Используется в тестах и при
// передаче токена через флаг командной строки.
type StaticProvider string

func (p StaticProvider) Token() (string, bool) {
	if p == "" {
		return "", false
	}
	return string(p), true
}
