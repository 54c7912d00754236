package user

import (
	"docui/internal/domain/user"
)

type listInput struct{}

type listOutput struct {
	Body []user.Record
}

type deleteInput struct {
	ID string `path:"id" doc:"Идентификатор пользователя"`
}

type deleteOutput struct {
	Body user.DeleteResponse
}
