package main

import (
	"net/http"
	"os"

	"golang.org/x/exp/slog"

	"docui/internal/app/server/api"
	"docui/internal/app/server/config"
	"docui/internal/app/server/store"
	"docui/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	st := store.New()
	seedDemo(st, cfg)

	mux := api.New(st, cfg, log)

	log.Info("starting stub server",
		slog.String("address", cfg.RunAddress),
		slog.Bool("auth_enabled", cfg.APIToken != ""),
	)

	if err := http.ListenAndServe(cfg.RunAddress, mux); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// seedDemo наполняет пустое хранилище парой пользователей,
// чтобы списки в клиенте не были пустыми сразу после старта.
func seedDemo(st *store.Store, cfg *config.Config) {
	if cfg.Env != config.EnvLocal {
		return
	}

	st.AddUser("alice@example.com", "Alice", "Smith")
	st.AddUser("bob@example.com", "Bob", "Jones")
	st.AddDocument("welcome.txt", []byte("Welcome to the document service.\n"))
}
