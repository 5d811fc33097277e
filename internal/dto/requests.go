package dto

// SignupRequest creates a student account. The portal_email tag applies the
// portal's fixed email pattern rather than the RFC-shaped default.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,portal_email"`
	RegNo    string `json:"regNo" validate:"required"`
	Stream   string `json:"stream" validate:"required"`
	Medium   string `json:"medium" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// StudentLoginRequest logs a student in by email or registration number.
type StudentLoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// AdminLoginRequest logs an admin in by email.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,portal_email"`
	Password string `json:"password" validate:"required"`
}

// MarkRequest records an exam result for a student.
type MarkRequest struct {
	RegNo   string   `json:"regNo" validate:"required"`
	Subject string   `json:"subject" validate:"required"`
	Exam    string   `json:"exam" validate:"required"`
	Score   *float64 `json:"score" validate:"required"`
	OutOf   *float64 `json:"outOf" validate:"required"`
}

// EventRequest creates a portal event. Only the title is mandatory, matching
// the original form.
type EventRequest struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date"`
	Desc  string `json:"desc"`
}

// ContactRequest is the marketing site's contact form.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,portal_email"`
	Program string `json:"program" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// NewsletterRequest subscribes an email address.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,portal_email"`
}
