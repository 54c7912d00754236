package user

import "time"

// Record describes a user as reported by the remote API. The identifier is
// issued by the external identity system and is opaque to the client.
type Record struct {
	ID        string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName joins the optional name parts for display.
func (r Record) FullName() string {
	switch {
	case r.FirstName == "" && r.LastName == "":
		return ""
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}
