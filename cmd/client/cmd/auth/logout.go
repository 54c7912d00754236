// cmd/client/cmd/auth/logout.go
package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docui/cmd/client/cmd/types"
	"docui/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Удалить сохраненный токен сессии",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if err := app.ClearToken(); err != nil {
			return fmt.Errorf("ошибка удаления токена: %w", err)
		}

		color.Green("✓ Сессия завершена")
		return nil
	},
}
