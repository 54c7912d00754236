package docs

import (
	"github.com/spf13/cobra"
)

// DocsCmd - родительская команда для всех операций с документами.
var DocsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Управление документами",
	Long:  `Просмотр списка, загрузка, скачивание и удаление документов.`,
}
