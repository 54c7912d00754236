// cmd/client/cmd/docs/download.go
package docs

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docui/cmd/client/cmd/types"
	"docui/internal/app/client"
	"docui/internal/domain/document"
	"docui/internal/utils/format"
)

var (
	downloadParsed bool
	downloadDir    string
)

var DownloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Скачать документ",
	Long: `Скачивает исходную форму документа или, с флагом --parsed,
его разобранную markdown-форму.

Имя файла берется из заголовка Content-Disposition ответа; если сервер
его не прислал, используется идентификатор документа.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		kind := document.KindSource
		if downloadParsed {
			kind = document.KindParsed
		}

		result, err := app.Documents.Download(cmd.Context(), args[0], kind)
		if err != nil {
			return fmt.Errorf("ошибка скачивания: %w", err)
		}

		path, err := app.Documents.SaveDownload(result, downloadDir)
		if err != nil {
			return err
		}

		color.Green("✓ Сохранено: %s (%s)", path, format.SizeKB(int64(len(result.Data))))
		return nil
	},
}

func init() {
	DownloadCmd.Flags().BoolVar(&downloadParsed, "parsed", false, "скачать разобранную markdown-форму")
	DownloadCmd.Flags().StringVarP(&downloadDir, "out", "o", "", "директория для сохранения (по умолчанию из конфигурации)")
}
