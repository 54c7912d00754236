// cmd/client/cmd/docs/list.go
package docs

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"docui/cmd/client/cmd/types"
	"docui/internal/app/client"
	"docui/internal/domain/document"
	"docui/internal/utils/format"
)

var (
	listLimit  int
	listPrefix string
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список документов",
	Long: `Просмотр списка загруженных документов.

Количество записей ограничивается флагом --limit, фильтрация по префиксу
идентификатора - флагом --prefix.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		screen := app.Documents
		screen.SetFilter(listLimit, listPrefix)
		defer screen.Close()

		if err := screen.Open(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка получения списка документов: %s", screen.ErrorMessage())
		}

		records, _, err := screen.Documents()
		if err != nil {
			return fmt.Errorf("ошибка получения списка документов: %w", err)
		}

		switch listFormat {
		case "json":
			return printDocumentsJSON(records)
		case "table":
			return printDocumentsTable(records)
		default:
			return printDocumentsSimple(records)
		}
	},
}

func printDocumentsSimple(records []document.Record) error {
	if len(records) == 0 {
		fmt.Println("Документы не найдены")
		return nil
	}

	fmt.Printf("Найдено документов: %d\n\n", len(records))

	for i, rec := range records {
		fmt.Printf("%d. %s (%s)\n", i+1, rec.ID, format.Truncate(rec.Filename, 40))
		fmt.Printf("   Создан: %s | Размер: %s\n",
			format.Date(rec.CreatedAt),
			format.SizeKB(rec.SizeBytes))
		fmt.Println()
	}

	return nil
}

func printDocumentsTable(records []document.Record) error {
	if len(records) == 0 {
		fmt.Println("Документы не найдены")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tИмя файла\tСоздан\tРазмер\tParsed\tIndex\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t\n")

	for _, rec := range records {
		parsed := "-"
		if rec.HasParsed {
			parsed = "✓"
		}
		indexed := "-"
		if rec.HasIndex {
			indexed = "✓"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			rec.ID,
			format.Truncate(rec.Filename, 30),
			format.Date(rec.CreatedAt),
			format.SizeKB(rec.SizeBytes),
			parsed,
			indexed,
		)
	}

	w.Flush()
	fmt.Printf("\nВсего документов: %d\n", len(records))
	return nil
}

func printDocumentsJSON(records []document.Record) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func init() {
	ListCmd.Flags().IntVar(&listLimit, "limit", 0, "ограничение количества документов (по умолчанию 50)")
	ListCmd.Flags().StringVar(&listPrefix, "prefix", "", "фильтр по префиксу идентификатора")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json)")
}
