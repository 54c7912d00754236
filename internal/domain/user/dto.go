package user

// DeleteResponse is returned by DELETE /users/{id}.
type DeleteResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
}
