package models

// Event is a portal announcement. Append-only; Date is an ISO date string or
// empty, and ordering is plain string comparison so empty dates sort first.
type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Desc  string `json:"desc,omitempty"`
}
