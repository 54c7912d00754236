package document

import (
	"docui/internal/domain/document"
)

type listInput struct {
	Limit  int    `query:"limit" default:"50" minimum:"1" maximum:"500" doc:"Максимальное число записей"`
	Prefix string `query:"prefix" doc:"Фильтр по префиксу идентификатора или имени файла"`
}

type listOutput struct {
	Body []document.Record
}

type deleteInput struct {
	ID string `path:"id" doc:"Идентификатор документа"`
}

type deleteOutput struct {
	Body document.DeleteResponse
}
