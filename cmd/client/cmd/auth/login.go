// cmd/client/cmd/auth/login.go
package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"docui/cmd/client/cmd/types"
	"docui/internal/app/client"
)

var (
	tokenFlag string
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Сохранить токен сессии",
	Long: `Сохраняет bearer-токен, выданный внешним провайдером идентификации.

Токен хранится локально и подставляется во все запросы к серверу.
Без сохраненного токена запросы уходят без заголовка Authorization.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		token := strings.TrimSpace(tokenFlag)
		if token == "" {
			// Запрашиваем токен без эха
			fmt.Print("Токен сессии: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			if err != nil {
				return fmt.Errorf("ошибка чтения токена: %w", err)
			}
			fmt.Println()
			token = strings.TrimSpace(string(raw))
		}

		if token == "" {
			return fmt.Errorf("токен не может быть пустым")
		}

		if err := app.SaveToken(token); err != nil {
			return fmt.Errorf("ошибка сохранения токена: %w", err)
		}

		color.Green("✓ Токен сессии сохранен")
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&tokenFlag, "token", "t", "", "токен сессии (если не задан, запрашивается интерактивно)")
}
