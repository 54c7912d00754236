package document

import (
	"time"
)

// Record describes a stored document as reported by the remote API.
// Records are created and destroyed on the remote side only; the client
// never mutates individual fields.
type Record struct {
	ID        string    `json:"document_id"`
	Filename  string    `json:"filename"`
	Extension string    `json:"extension"`
	FileType  string    `json:"file_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
	HasParsed bool      `json:"has_parsed"`
	HasIndex  bool      `json:"has_index"`
}

// Kind selects which form of a document to download.
type Kind string

const (
	KindSource Kind = "source"
	KindParsed Kind = "parsed"
)

// DownloadResult pairs raw binary content with the filename it should be
// saved under. It lives only for the duration of a single download.
type DownloadResult struct {
	Filename string
	Data     []byte
}
