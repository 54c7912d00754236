// cmd/client/cmd/docs/upload.go
package docs

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docui/cmd/client/cmd/types"
	"docui/internal/app/client"
)

var UploadCmd = &cobra.Command{
	Use:   "upload <файл>",
	Short: "Загрузить документ",
	Long: `Загружает один файл на сервер multipart-запросом.

Тип и размер файла проверяются до обращения к серверу. Одновременно
выполняется не больше одной загрузки.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Printf("Загрузка %s...\n", args[0])

		resp, err := app.Documents.Upload(cmd.Context(), args[0])
		if err != nil {
			if msg := app.Documents.ErrorMessage(); msg != "" {
				return fmt.Errorf("ошибка загрузки: %s", msg)
			}
			return fmt.Errorf("ошибка загрузки: %w", err)
		}

		color.Green("✓ %s", resp.Message)
		fmt.Printf("ID документа: %s\n", resp.DocumentID)
		return nil
	},
}
