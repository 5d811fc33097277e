package service

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/models"
)

type viewEventSource interface {
	Upcoming(ctx context.Context) ([]models.Event, error)
}

type viewMarkSource interface {
	MarksFor(ctx context.Context, regNo string) ([]models.Mark, error)
}

type viewStudentSource interface {
	Students(ctx context.Context, filter string) ([]dto.StudentRow, error)
}

// ViewService builds the portal view models. Every method is idempotent and
// pure with respect to its inputs; the HTTP layer is only a serializer on top.
type ViewService struct {
	events   viewEventSource
	marks    viewMarkSource
	students viewStudentSource
}

// NewViewService constructs a ViewService instance.
func NewViewService(events viewEventSource, marks viewMarkSource, students viewStudentSource) *ViewService {
	return &ViewService{events: events, marks: marks, students: students}
}

// Events renders the events list.
func (s *ViewService) Events(ctx context.Context) ([]dto.EventItem, error) {
	events, err := s.events.Upcoming(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EventItem, 0, len(events))
	for _, e := range events {
		items = append(items, dto.EventItem{ID: e.ID, Title: e.Title, Date: e.Date, Desc: e.Desc})
	}
	return items, nil
}

// MarksFor renders the marks table for a registration number.
func (s *ViewService) MarksFor(ctx context.Context, regNo string) ([]dto.MarkRow, error) {
	marks, err := s.marks.MarksFor(ctx, regNo)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.MarkRow, 0, len(marks))
	for _, m := range marks {
		rows = append(rows, dto.MarkRow{
			Date:    time.UnixMilli(m.CreatedAt).Format("2006-01-02"),
			Exam:    m.Exam,
			Subject: m.Subject,
			Score:   m.Score,
			OutOf:   m.OutOf,
			Result:  fmt.Sprintf("%v/%v", m.Score, m.OutOf),
		})
	}
	return rows, nil
}

// MyDetails renders the profile card for a session; optional rows appear
// only when the underlying field is present.
func (s *ViewService) MyDetails(session models.Session) dto.ProfileDetails {
	return dto.ProfileDetails{
		Name:   session.Name,
		Email:  session.Email,
		RegNo:  session.RegNo,
		Stream: session.Stream,
		Medium: session.Medium,
	}
}

// Students renders the admin roster, filtered.
func (s *ViewService) Students(ctx context.Context, filter string) ([]dto.StudentRow, error) {
	return s.students.Students(ctx, filter)
}

// Dashboard composes the per-role dashboard view: details and events for
// everyone, the marks table for students with a regNo, the roster for admins.
func (s *ViewService) Dashboard(ctx context.Context, session models.Session) (*dto.DashboardView, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}

	view := &dto.DashboardView{
		Role:    session.Role,
		Details: s.MyDetails(session),
		Events:  events,
	}

	if session.Role == models.RoleStudent && session.RegNo != "" {
		marks, err := s.MarksFor(ctx, session.RegNo)
		if err != nil {
			return nil, err
		}
		view.Marks = marks
	}

	if session.Role == models.RoleAdmin {
		students, err := s.Students(ctx, "")
		if err != nil {
			return nil, err
		}
		view.Students = students
	}

	return view, nil
}
