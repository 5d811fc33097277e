package models

// Inquiry is a submitted contact-form entry. Append-only.
type Inquiry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Program   string `json:"program"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"createdAt"`
}
