// cmd/client/cmd/init.go
package cmd

import (
	"docui/cmd/client/cmd/auth"
	"docui/cmd/client/cmd/docs"
	"docui/cmd/client/cmd/users"
)

func init() {
	// Команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.StatusCmd)

	// Команды работы с документами
	rootCmd.AddCommand(docs.DocsCmd)
	docs.DocsCmd.AddCommand(docs.ListCmd)
	docs.DocsCmd.AddCommand(docs.UploadCmd)
	docs.DocsCmd.AddCommand(docs.DeleteCmd)
	docs.DocsCmd.AddCommand(docs.DownloadCmd)

	// Команды работы с пользователями
	rootCmd.AddCommand(users.UsersCmd)
	users.UsersCmd.AddCommand(users.ListCmd)
	users.UsersCmd.AddCommand(users.DeleteCmd)
}
