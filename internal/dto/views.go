package dto

import "github.com/noah-isme/etec-portal-api/internal/models"

// EventItem is one rendered events-list entry.
type EventItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Desc  string `json:"desc,omitempty"`
}

// MarkRow is one rendered marks-table row. Result carries the display form
// "score/outOf" the table shows.
type MarkRow struct {
	Date    string  `json:"date"`
	Exam    string  `json:"exam"`
	Subject string  `json:"subject"`
	Score   float64 `json:"score"`
	OutOf   float64 `json:"outOf"`
	Result  string  `json:"result"`
}

// ProfileDetails renders the "my details" card; optional fields are omitted
// when empty so the card only shows rows that apply to the role.
type ProfileDetails struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	RegNo  string `json:"regNo,omitempty"`
	Stream string `json:"stream,omitempty"`
	Medium string `json:"medium,omitempty"`
}

// StudentRow is one rendered roster-table row.
type StudentRow struct {
	RegNo  string `json:"regNo"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Stream string `json:"stream"`
	Medium string `json:"medium"`
}

// DashboardView composes the per-role dashboard: every user sees details and
// events, students additionally get their marks, admins the student roster.
type DashboardView struct {
	Role     models.Role    `json:"role"`
	Details  ProfileDetails `json:"details"`
	Events   []EventItem    `json:"events"`
	Marks    []MarkRow      `json:"marks,omitempty"`
	Students []StudentRow   `json:"students,omitempty"`
}

// LoginResponse returns the issued token and session snapshot.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	ExpiresIn   int64          `json:"expires_in"`
	Session     models.Session `json:"session"`
}
