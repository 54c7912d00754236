package document

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-list",
		Method:      http.MethodGet,
		Path:        "/documents/",
		Summary:     "Список документов",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-delete",
		Method:      http.MethodDelete,
		Path:        "/documents/{id}",
		Summary:     "Удалить документ",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
