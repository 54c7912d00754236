//Заглушечный сервер для локальной разработки клиента.
//Повторяет контракт удаленного API управления документами:

//GET    /health                   # Проверка доступности (публичный)
//GET    /documents/               # Список документов (auth)
//DELETE /documents/{id}           # Удалить документ (auth)
//POST   /upload/                  # Загрузка файла multipart (auth)
//GET    /documents/{id}/source    # Скачать исходный файл (auth)
//GET    /documents/{id}/parsed    # Скачать разобранный markdown (auth)
//GET    /users/                   # Список пользователей (auth)
//DELETE /users/{id}               # Удалить пользователя (auth)

package api

import (
	"docui/internal/app/server/api/http/document"
	"docui/internal/app/server/api/http/health"
	"docui/internal/app/server/api/http/middleware"
	"docui/internal/app/server/api/http/middleware/auth"
	"docui/internal/app/server/api/http/middleware/logger"
	"docui/internal/app/server/api/http/user"
	"docui/internal/app/server/config"
	"docui/internal/app/server/store"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *health.Handler
	Document *document.Handler
	User     *user.Handler
}

// New создает *chi.Mux: JSON-операции регистрируются через huma.Register,
// загрузка и скачивание файлов идут обычными chi-маршрутами.
func New(st *store.Store, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("DocUI API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	authMW := auth.New(cfg.APIToken, log)
	h := handlers(st, cfg, authMW, log)
	h.Health.SetupRoutes(API)
	h.Document.SetupRoutes(API)
	h.User.SetupRoutes(API)

	// Бинарные маршруты мимо Huma, но с той же проверкой токена.
	mux.Group(func(r chi.Router) {
		r.Use(authMW.Handler)
		r.Post("/upload/", h.Document.Upload)
		r.Get("/documents/{id}/source", h.Document.DownloadSource)
		r.Get("/documents/{id}/parsed", h.Document.DownloadParsed)
	})

	return mux
}

func handlers(st *store.Store, cfg *config.Config, authMW *auth.Auth, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := health.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	documentHandler := document.NewHandler(st, cfg.MaxUpload, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	userHandler := user.NewHandler(st, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Document: documentHandler,
		User:     userHandler,
	}
}
