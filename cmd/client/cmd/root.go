// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"docui/cmd/client/cmd/types"
	"docui/internal/app/client"
	"docui/internal/app/client/config"
	"docui/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "docui",
	Short: "DocUI - клиент для управления документами",
	Long: `DocUI - это клиентское приложение для работы с удаленным хранилищем
документов: загрузка PDF и текстовых файлов, просмотр списков документов
и пользователей, скачивание исходной и разобранной формы документа.

Все запросы к серверу выполняются с bearer-токеном текущей сессии.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	cfg = config.MustLoad()

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.APIURL = serverURL
	}
	if debug {
		cfg.Env = config.EnvLocal
		cfg.EnableDebugMode = true
	}

	// Настраиваем логгер
	log = logger.New(cfg.Env)

	// Создаем приложение и кладем его в контекст команд
	app = client.New(cfg, log)
	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func init() {
	cobra.OnInitialize()

	// Глобальные флаги
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL сервера API документов")
}
