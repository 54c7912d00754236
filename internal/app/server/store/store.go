package store

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"docui/internal/domain/document"
	"docui/internal/domain/user"
)

// StoredDocument keeps a document record together with its binary forms.
type StoredDocument struct {
	Record document.Record
	Source []byte
	Parsed []byte
}

// Store is the in-memory backing of the development stub server. It exists
// so the client can be exercised end-to-end without the real remote API.
type Store struct {
	mu    sync.RWMutex
	docs  map[string]*StoredDocument
	users map[string]*user.Record
}

func New() *Store {
	return &Store{
		docs:  make(map[string]*StoredDocument),
		users: make(map[string]*user.Record),
	}
}

// AddDocument stores an uploaded file and synthesizes its parsed markdown
// form so both download kinds work against the stub.
func (s *Store) AddDocument(filename string, content []byte) document.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	rec := document.Record{
		ID:        uuid.NewString(),
		Filename:  filepath.Base(filename),
		Extension: ext,
		CreatedAt: now,
		SizeBytes: int64(len(content)),
		HasParsed: true,
		HasIndex:  false,
	}

	parsed := fmt.Sprintf("# %s\n\nUploaded %s, %d bytes.\n",
		rec.Filename, now.Format(time.RFC3339), rec.SizeBytes)

	s.docs[rec.ID] = &StoredDocument{
		Record: rec,
		Source: content,
		Parsed: []byte(parsed),
	}
	return rec
}

// ListDocuments returns up to limit records whose identifier or filename
// starts with prefix, newest first.
func (s *Store) ListDocuments(limit int, prefix string) []document.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]document.Record, 0, len(s.docs))
	for _, doc := range s.docs {
		if prefix != "" &&
			!strings.HasPrefix(doc.Record.ID, prefix) &&
			!strings.HasPrefix(doc.Record.Filename, prefix) {
			continue
		}
		records = append(records, doc.Record)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

// GetDocument returns a stored document by id.
func (s *Store) GetDocument(id string) (*StoredDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, document.ErrNotFound
	}
	return doc, nil
}

// DeleteDocument removes a document and returns its record.
func (s *Store) DeleteDocument(id string) (document.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return document.Record{}, document.ErrNotFound
	}
	delete(s.docs, id)
	return doc.Record, nil
}

// AddUser registers a user record.
func (s *Store) AddUser(email, firstName, lastName string) user.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := user.Record{
		ID:        "user_" + uuid.NewString(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
	}
	s.users[rec.ID] = &rec
	return rec
}

// ListUsers returns all users ordered by creation time.
func (s *Store) ListUsers() []user.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]user.Record, 0, len(s.users))
	for _, u := range s.users {
		records = append(records, *u)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records
}

// DeleteUser removes a user and returns the removed record.
func (s *Store) DeleteUser(id string) (user.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.Record{}, user.ErrNotFound
	}
	delete(s.users, id)
	return *u, nil
}
