package client

import (
	"golang.org/x/exp/slog"

	"docui/internal/app/client/api"
	"docui/internal/app/client/config"
	"docui/internal/app/client/session"
)

// App связывает конфигурацию, сессию, клиент API и экраны.
type App struct {
	config      *config.Config
	log         *slog.Logger
	session     *session.FileStore
	api         *api.Client
	invalidator *Invalidator

	Documents *DocumentsScreen
	Users     *UsersScreen
}

func New(cfg *config.Config, log *slog.Logger) *App {
	store := session.NewFileStore(cfg.TokenPath)
	apiClient := api.New(cfg, store, log)
	inv := NewInvalidator()

	app := &App{
		config:      cfg,
		log:         log,
		session:     store,
		api:         apiClient,
		invalidator: inv,
		Documents:   NewDocumentsScreen(apiClient, cfg, log, inv),
		Users:       NewUsersScreen(apiClient, log, inv),
	}

	if _, ok := store.Token(); ok {
		log.Debug("Токен сессии загружен из файла")
	}

	return app
}

// Config возвращает конфигурацию приложения.
func (a *App) Config() *config.Config {
	return a.config
}

// SaveToken сохраняет токен сессии.
func (a *App) SaveToken(token string) error {
	return a.session.Save(token)
}

// ClearToken удаляет сохраненный токен сессии.
func (a *App) ClearToken() error {
	return a.session.Clear()
}

// Authenticated сообщает, есть ли сохраненная сессия.
func (a *App) Authenticated() bool {
	_, ok := a.session.Token()
	return ok
}
