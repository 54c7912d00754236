// cmd/client/cmd/users/list.go
package users

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"docui/cmd/client/cmd/types"
	"docui/internal/app/client"
	"docui/internal/domain/user"
	"docui/internal/utils/format"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список пользователей",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		screen := app.Users
		defer screen.Close()

		if err := screen.Open(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка получения списка пользователей: %s", screen.ErrorMessage())
		}

		records, _, err := screen.Users()
		if err != nil {
			return fmt.Errorf("ошибка получения списка пользователей: %w", err)
		}

		if listFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(records)
		}

		return printUsersTable(records)
	},
}

func printUsersTable(records []user.Record) error {
	if len(records) == 0 {
		fmt.Println("Пользователи не найдены")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tИмя\tEmail\tСоздан\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")

	for _, rec := range records {
		name := rec.FullName()
		if name == "" {
			name = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			rec.ID,
			format.Truncate(name, 30),
			rec.Email,
			format.Date(rec.CreatedAt),
		)
	}

	w.Flush()
	fmt.Printf("\nВсего пользователей: %d\n", len(records))
	return nil
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "формат вывода (table, json)")
}
