package document

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrEmptyContent = errors.New("document has no content")
)
