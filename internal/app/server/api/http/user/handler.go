package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"docui/internal/app/server/store"
	"docui/internal/domain/user"
)

type Handler struct {
	store      *store.Store
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(st *store.Store, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		store:      st,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(_ context.Context, _ *listInput) (*listOutput, error) {
	return &listOutput{
		Body: h.store.ListUsers(),
	}, nil
}

func (h *Handler) delete(_ context.Context, input *deleteInput) (*deleteOutput, error) {
	rec, err := h.store.DeleteUser(input.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error404NotFound("user not found")
		}
		return nil, err
	}

	h.log.Info("user deleted", slog.String("user_id", rec.ID))

	return &deleteOutput{
		Body: user.DeleteResponse{
			Message: "user deleted",
			UserID:  rec.ID,
			Email:   rec.Email,
		},
	}, nil
}
