package models

// Role represents the portal roles.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Account represents a stored portal identity. The record is keyed in the
// accounts collection by its lowercased email; student accounts carry an
// uppercased registration number that acts as a secondary lookup key.
//
// Passwords are stored and compared in plaintext. This is a deliberate
// anti-pattern kept for parity with the demo portal this service backs and
// must never be reused outside a demo context.
type Account struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	RegNo    string `json:"regNo,omitempty"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Stream   string `json:"stream,omitempty"`
	Medium   string `json:"medium,omitempty"`
}

// Session is the denormalized snapshot of the account taken at login time.
// It is a copy, not a live reference: later account edits do not touch it.
type Session struct {
	Email  string `json:"email"`
	RegNo  string `json:"regNo,omitempty"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
	Stream string `json:"stream,omitempty"`
	Medium string `json:"medium,omitempty"`
}

// SessionFromAccount builds the login snapshot. Admin snapshots omit the
// student-only fields, matching what the portal stores for each role.
func SessionFromAccount(a Account) Session {
	s := Session{Email: a.Email, Role: a.Role, Name: a.Name}
	if a.Role == RoleStudent {
		s.RegNo = a.RegNo
		s.Stream = a.Stream
		s.Medium = a.Medium
	}
	return s
}
