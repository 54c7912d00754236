package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"docui/internal/app/server/store"
)

func newTestHandler() (*Handler, *store.Store) {
	st := store.New()
	h := NewHandler(st, slog.Default(), huma.Middlewares{})
	return h, st
}

func TestHandler_list(t *testing.T) {
	h, st := newTestHandler()
	st.AddUser("alice@example.com", "Alice", "Smith")
	st.AddUser("bob@example.com", "Bob", "Jones")

	output, err := h.list(context.Background(), &listInput{})

	require.NoError(t, err)
	assert.Len(t, output.Body, 2)
}

func TestHandler_delete(t *testing.T) {
	h, st := newTestHandler()
	rec := st.AddUser("alice@example.com", "Alice", "Smith")

	output, err := h.delete(context.Background(), &deleteInput{ID: rec.ID})

	require.NoError(t, err)
	assert.Equal(t, rec.ID, output.Body.UserID)
	assert.Equal(t, "alice@example.com", output.Body.Email)
	assert.Empty(t, st.ListUsers())
}

func TestHandler_delete_notFound(t *testing.T) {
	h, _ := newTestHandler()

	_, err := h.delete(context.Background(), &deleteInput{ID: "user_missing"})

	require.Error(t, err)
	se, ok := err.(huma.StatusError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, se.GetStatus())
}
