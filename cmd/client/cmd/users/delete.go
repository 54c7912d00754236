// cmd/client/cmd/users/delete.go
package users

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docui/cmd/client/cmd/types"
	"docui/internal/app/client"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить пользователя",
	Long: `Удаляет пользователя по идентификатору после подтверждения.

Это действие необратимо.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		screen := app.Users
		screen.SelectForDelete(args[0])

		if !deleteYes {
			fmt.Printf("Удалить пользователя %s? Это действие необратимо. [y/N]: ", args[0])
			var answer string
			_, _ = fmt.Scanln(&answer)
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				screen.CancelDelete()
				fmt.Println("Удаление отменено")
				return nil
			}
		}

		resp, err := screen.ConfirmDelete(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка удаления: %s", screen.ErrorMessage())
		}

		color.Green("✓ %s (%s)", resp.Message, resp.Email)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "удалить без подтверждения")
}
