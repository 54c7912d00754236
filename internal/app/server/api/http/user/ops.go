package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-list",
		Method:      http.MethodGet,
		Path:        "/users/",
		Summary:     "Список пользователей",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-delete",
		Method:      http.MethodDelete,
		Path:        "/users/{id}",
		Summary:     "Удалить пользователя",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
