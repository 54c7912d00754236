package client

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"docui/internal/app/client/api"
	"docui/internal/app/client/config"
	"docui/internal/domain/document"
)

// MockDocumentsAPI is a mock implementation of the DocumentsAPI interface.
type MockDocumentsAPI struct {
	mock.Mock
}

func (m *MockDocumentsAPI) ListDocuments(ctx context.Context, limit int, prefix string) ([]document.Record, error) {
	args := m.Called(ctx, limit, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Record), args.Error(1)
}

func (m *MockDocumentsAPI) UploadDocument(ctx context.Context, filename string, content io.Reader) (*document.UploadResponse, error) {
	args := m.Called(ctx, filename, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.UploadResponse), args.Error(1)
}

func (m *MockDocumentsAPI) DeleteDocument(ctx context.Context, id string) (*document.DeleteResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.DeleteResponse), args.Error(1)
}

func (m *MockDocumentsAPI) DownloadSource(ctx context.Context, id string) (*document.DownloadResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.DownloadResult), args.Error(1)
}

func (m *MockDocumentsAPI) DownloadParsed(ctx context.Context, id string) (*document.DownloadResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.DownloadResult), args.Error(1)
}

func screenConfig() *config.Config {
	return &config.Config{
		Env:              config.EnvLocal,
		APIURL:           "http://localhost:8000",
		APITimeout:       time.Second,
		AppName:          "DocUI",
		MaxFileSize:      1024,
		AllowedFileTypes: []string{"pdf", "txt"},
		DownloadDir:      ".",
	}
}

func newDocumentsScreen(m *MockDocumentsAPI) *DocumentsScreen {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDocumentsScreen(m, screenConfig(), log, NewInvalidator())
}

func sampleRecords(ids ...string) []document.Record {
	records := make([]document.Record, 0, len(ids))
	for _, id := range ids {
		records = append(records, document.Record{ID: id, SizeBytes: 2048})
	}
	return records
}

func TestDocumentsScreen_OpenLoadsList(t *testing.T) {
	m := new(MockDocumentsAPI)
	m.On("ListDocuments", mock.Anything, 0, "").Return(sampleRecords("abc123"), nil).Once()

	screen := newDocumentsScreen(m)
	require.NoError(t, screen.Open(context.Background()))

	docs, state, err := screen.Documents()
	assert.Equal(t, StateReady, state)
	assert.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "abc123", docs[0].ID)

	m.AssertExpectations(t)
}

func TestDocumentsScreen_FailedFetchIsRetryable(t *testing.T) {
	m := new(MockDocumentsAPI)
	m.On("ListDocuments", mock.Anything, 0, "").Return(nil, errors.New("down")).Once()
	m.On("ListDocuments", mock.Anything, 0, "").Return(sampleRecords("abc123"), nil).Once()

	screen := newDocumentsScreen(m)

	require.Error(t, screen.Open(context.Background()))
	_, state, _ := screen.Documents()
	assert.Equal(t, StateFailed, state)
	assert.NotEmpty(t, screen.ErrorMessage())

	// no automatic retry happened; an explicit retry succeeds
	require.NoError(t, screen.Open(context.Background()))
	docs, state, _ := screen.Documents()
	assert.Equal(t, StateReady, state)
	assert.Len(t, docs, 1)
	assert.Empty(t, screen.ErrorMessage())

	m.AssertExpectations(t)
}

func TestDocumentsScreen_DeleteConfirmationFlow(t *testing.T) {
	m := new(MockDocumentsAPI)
	m.On("ListDocuments", mock.Anything, 0, "").Return(sampleRecords("u1", "u2"), nil)
	m.On("DeleteDocument", mock.Anything, "u2").
		Return(&document.DeleteResponse{Message: "deleted", DocumentID: "u2"}, nil).Once()

	screen := newDocumentsScreen(m)
	require.NoError(t, screen.Open(context.Background()))

	// selecting a second id replaces the pending one, no stacking
	screen.SelectForDelete("u1")
	assert.Equal(t, "u1", screen.PendingDelete())
	screen.SelectForDelete("u2")
	assert.Equal(t, "u2", screen.PendingDelete())

	resp, err := screen.ConfirmDelete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u2", resp.DocumentID)
	assert.Empty(t, screen.PendingDelete())

	// exactly one delete call, for u2 only
	m.AssertNumberOfCalls(t, "DeleteDocument", 1)
	// the mutation invalidated the list: initial fetch + one re-fetch
	m.AssertNumberOfCalls(t, "ListDocuments", 2)
}

func TestDocumentsScreen_CancelDelete(t *testing.T) {
	m := new(MockDocumentsAPI)
	screen := newDocumentsScreen(m)

	screen.SelectForDelete("u1")
	screen.CancelDelete()
	assert.Empty(t, screen.PendingDelete())

	_, err := screen.ConfirmDelete(context.Background())
	assert.ErrorIs(t, err, ErrNothingSelected)
	m.AssertNotCalled(t, "DeleteDocument")
}

func TestDocumentsScreen_DeleteVanishedRecord(t *testing.T) {
	m := new(MockDocumentsAPI)
	notFound := &api.NotFoundError{TransportError: api.TransportError{
		Kind:       api.KindHTTP,
		StatusCode: 404,
		Detail:     "document not found",
	}}
	m.On("DeleteDocument", mock.Anything, "gone").Return(nil, notFound).Once()

	screen := newDocumentsScreen(m)
	screen.SelectForDelete("gone")

	_, err := screen.ConfirmDelete(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.NotEmpty(t, screen.ErrorMessage())

	// failed mutation must not trigger a re-fetch
	m.AssertNotCalled(t, "ListDocuments")
}

func TestDocumentsScreen_Upload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0644))

	m := new(MockDocumentsAPI)
	m.On("ListDocuments", mock.Anything, 0, "").Return(sampleRecords("doc-1"), nil).Once()
	m.On("UploadDocument", mock.Anything, "report.pdf", mock.Anything).
		Return(&document.UploadResponse{Message: "uploaded", DocumentID: "doc-1"}, nil).Once()

	screen := newDocumentsScreen(m)
	resp, err := screen.Upload(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", resp.DocumentID)

	// successful upload invalidates the documents resource
	m.AssertNumberOfCalls(t, "ListDocuments", 1)
	m.AssertExpectations(t)
}

func TestDocumentsScreen_UploadSingleFlight(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0644))

	release := make(chan struct{})
	started := make(chan struct{})

	m := new(MockDocumentsAPI)
	m.On("ListDocuments", mock.Anything, 0, "").Return(sampleRecords(), nil)
	m.On("UploadDocument", mock.Anything, "report.pdf", mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(&document.UploadResponse{DocumentID: "doc-1"}, nil).Once()

	screen := newDocumentsScreen(m)

	done := make(chan error, 1)
	go func() {
		_, err := screen.Upload(context.Background(), path)
		done <- err
	}()

	<-started
	assert.True(t, screen.Uploading())

	// a second file while one is in flight is rejected client-side
	_, err := screen.Upload(context.Background(), path)
	assert.ErrorIs(t, err, ErrUploadInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, screen.Uploading())

	m.AssertNumberOfCalls(t, "UploadDocument", 1)
}

func TestDocumentsScreen_UploadTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.pdf")
	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0644))

	m := new(MockDocumentsAPI)
	screen := newDocumentsScreen(m) // MaxFileSize is 1024 in screenConfig

	_, err := screen.Upload(context.Background(), path)
	require.Error(t, err)

	var ve *api.ValidationError
	assert.ErrorAs(t, err, &ve)
	m.AssertNotCalled(t, "UploadDocument")
}

func TestDocumentsScreen_DownloadDoesNotTouchListState(t *testing.T) {
	m := new(MockDocumentsAPI)
	m.On("ListDocuments", mock.Anything, 0, "").Return(sampleRecords("abc123"), nil).Once()
	m.On("DownloadSource", mock.Anything, "abc123").Return(nil, errors.New("gone")).Once()

	screen := newDocumentsScreen(m)
	require.NoError(t, screen.Open(context.Background()))

	_, err := screen.Download(context.Background(), "abc123", document.KindSource)
	require.Error(t, err)

	// a failed row download leaves the list snapshot intact
	docs, state, listErr := screen.Documents()
	assert.Equal(t, StateReady, state)
	assert.NoError(t, listErr)
	assert.Len(t, docs, 1)
}

func TestDocumentsScreen_SaveDownload(t *testing.T) {
	dir := t.TempDir()
	m := new(MockDocumentsAPI)
	screen := newDocumentsScreen(m)

	path, err := screen.SaveDownload(&document.DownloadResult{
		Filename: "report.pdf",
		Data:     []byte("content"),
	}, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
	assert.Equal(t, filepath.Join(dir, "report.pdf"), path)
}
