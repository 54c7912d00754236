package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для управления сессией.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление сессией",
	Long:  `Сохранение, просмотр и удаление токена сессии.`,
}
