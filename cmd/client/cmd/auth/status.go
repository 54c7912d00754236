// cmd/client/cmd/auth/status.go
package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docui/cmd/client/cmd/types"
	"docui/internal/app/client"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать состояние сессии",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if app.Authenticated() {
			color.Green("✓ Токен сессии сохранен")
		} else {
			color.Yellow("Сессии нет: запросы уходят без заголовка Authorization")
		}
		return nil
	},
}
