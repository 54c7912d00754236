package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"docui/internal/app/server/store"
	"docui/internal/domain/document"
)

type Handler struct {
	store      *store.Store
	maxUpload  int64
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(st *store.Store, maxUpload int64, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		store:      st,
		maxUpload:  maxUpload,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(_ context.Context, input *listInput) (*listOutput, error) {
	records := h.store.ListDocuments(input.Limit, input.Prefix)

	return &listOutput{
		Body: records,
	}, nil
}

func (h *Handler) delete(_ context.Context, input *deleteInput) (*deleteOutput, error) {
	rec, err := h.store.DeleteDocument(input.ID)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, huma.Error404NotFound("document not found")
		}
		return nil, err
	}

	h.log.Info("document deleted", slog.String("document_id", rec.ID))

	return &deleteOutput{
		Body: document.DeleteResponse{
			Message:    "document deleted",
			DocumentID: rec.ID,
		},
	}, nil
}

// Upload принимает multipart-форму с полем file. Загрузка идет мимо Huma,
// чтобы не тащить multipart через его схемы.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "form field 'file' is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	rec := h.store.AddDocument(header.Filename, content)
	h.log.Info("document uploaded",
		slog.String("document_id", rec.ID),
		slog.String("filename", rec.Filename),
		slog.Int64("size", rec.SizeBytes),
	)

	h.writeJSON(w, http.StatusOK, document.UploadResponse{
		Message:    "upload accepted",
		DocumentID: rec.ID,
	})
}

// DownloadSource отдает исходный файл документа.
func (h *Handler) DownloadSource(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.lookup(w, r)
	if !ok {
		return
	}

	h.serveAttachment(w, doc.Record.Filename, "application/octet-stream", doc.Source)
}

// DownloadParsed отдает разобранную markdown-форму документа.
func (h *Handler) DownloadParsed(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.lookup(w, r)
	if !ok {
		return
	}

	name := strings.TrimSuffix(doc.Record.Filename, filepath.Ext(doc.Record.Filename)) + ".md"
	h.serveAttachment(w, name, "text/markdown; charset=utf-8", doc.Parsed)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*store.StoredDocument, bool) {
	id := chi.URLParam(r, "id")

	doc, err := h.store.GetDocument(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "document not found")
		return nil, false
	}
	return doc, true
}

func (h *Handler) serveAttachment(w http.ResponseWriter, filename, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(content); err != nil {
		h.log.Error("failed to write response body", slog.String("error", err.Error()))
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, detail string) {
	h.writeJSON(w, status, map[string]string{"detail": detail})
}
