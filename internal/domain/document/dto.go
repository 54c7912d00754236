package document

// UploadResponse is returned by POST /upload/.
type UploadResponse struct {
	Message    string `json:"message"`
	DocumentID string `json:"document_id"`
}

// DeleteResponse is returned by DELETE /documents/{id}.
type DeleteResponse struct {
	Message    string `json:"message"`
	DocumentID string `json:"document_id"`
}
