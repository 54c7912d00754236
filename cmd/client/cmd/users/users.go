package users

import (
	"github.com/spf13/cobra"
)

// UsersCmd - родительская команда для операций с пользователями.
var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Управление пользователями",
	Long:  `Просмотр списка и удаление пользователей.`,
}
