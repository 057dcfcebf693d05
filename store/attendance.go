package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"supportdesk-backend/apperr"
	"supportdesk-backend/models"
)

// AttendanceGateway is the slice of the remote data source the attendance
// store needs. Production wiring injects remote.Attendances.
type AttendanceGateway interface {
	List(ctx context.Context) ([]models.Attendance, error)
	Get(ctx context.Context, id uuid.UUID) (models.Attendance, error)
	Insert(ctx context.Context, attendance models.Attendance) (models.Attendance, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Attendance, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentGateway backs the comment thread of an attendance.
type CommentGateway interface {
	ListByAttendance(ctx context.Context, attendanceID uuid.UUID) ([]models.Comment, error)
	Insert(ctx context.Context, comment models.Comment) (models.Comment, error)
}

// CreateAttendanceInput defines the expected JSON structure for opening an
// attendance. Status accepts the legacy "resolved"/"closed" spellings and
// folds them into "completed".
type CreateAttendanceInput struct {
	CustomerID         uuid.UUID  `json:"customer_id" binding:"required"`
	AttendantID        uuid.UUID  `json:"attendant_id" binding:"required"`
	Title              string     `json:"title" binding:"required"`
	ProblemDescription string     `json:"problem_description"`
	Status             string     `json:"status" binding:"omitempty,attendance_status"`
	Priority           string     `json:"priority" binding:"omitempty,attendance_priority"`
	DueDate            *time.Time `json:"due_date"`
}

// UpdateAttendanceInput defines the expected JSON structure for updating an
// attendance. Nil fields are left untouched.
type UpdateAttendanceInput struct {
	Title              *string    `json:"title"`
	ProblemDescription *string    `json:"problem_description"`
	Solution           *string    `json:"solution"`
	Status             *string    `json:"status" binding:"omitempty,attendance_status"`
	Priority           *string    `json:"priority" binding:"omitempty,attendance_priority"`
	AttendantID        *uuid.UUID `json:"attendant_id"`
	DueDate            *time.Time `json:"due_date"`
}

func (in UpdateAttendanceInput) fields() (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.ProblemDescription != nil {
		fields["problem_description"] = *in.ProblemDescription
	}
	if in.Solution != nil {
		fields["solution"] = *in.Solution
	}
	if in.Status != nil {
		status, ok := models.CanonicalStatus(*in.Status)
		if !ok {
			return nil, apperr.New(apperr.Validation, "invalid status")
		}
		fields["status"] = status
	}
	if in.Priority != nil {
		if !models.ValidPriority(*in.Priority) {
			return nil, apperr.New(apperr.Validation, "invalid priority")
		}
		fields["priority"] = *in.Priority
	}
	if in.AttendantID != nil {
		fields["attendant_id"] = *in.AttendantID
	}
	if in.DueDate != nil {
		fields["due_date"] = *in.DueDate
	}
	return fields, nil
}

type AttendanceStore struct {
	status
	gateway  AttendanceGateway
	comments CommentGateway

	items    []models.Attendance
	selected *models.Attendance
}

func NewAttendanceStore(gateway AttendanceGateway, comments CommentGateway) *AttendanceStore {
	return &AttendanceStore{gateway: gateway, comments: comments}
}

func (s *AttendanceStore) Items() []models.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Attendance, len(s.items))
	copy(out, s.items)
	return out
}

func (s *AttendanceStore) Selected() *models.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	a := *s.selected
	return &a
}

func (s *AttendanceStore) FetchAll(ctx context.Context) (err error) {
	s.begin()
	defer func() { s.end(err) }()

	items, err := s.gateway.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *AttendanceStore) FetchByID(ctx context.Context, id uuid.UUID) (err error) {
	s.begin()
	defer func() { s.end(err) }()

	attendance, err := s.gateway.Get(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.selected = &attendance
	s.mu.Unlock()
	return nil
}

func (s *AttendanceStore) Create(ctx context.Context, input CreateAttendanceInput) (attendance models.Attendance, err error) {
	s.begin()
	defer func() { s.end(err) }()

	status := models.StatusOpen
	if input.Status != "" {
		var ok bool
		if status, ok = models.CanonicalStatus(input.Status); !ok {
			err = apperr.New(apperr.Validation, "invalid status")
			return models.Attendance{}, err
		}
	}
	priority := models.PriorityMedium
	if input.Priority != "" {
		if !models.ValidPriority(input.Priority) {
			err = apperr.New(apperr.Validation, "invalid priority")
			return models.Attendance{}, err
		}
		priority = input.Priority
	}
	if input.CustomerID == uuid.Nil || input.AttendantID == uuid.Nil {
		err = apperr.New(apperr.Validation, "customer and attendant are required")
		return models.Attendance{}, err
	}

	attendance, err = s.gateway.Insert(ctx, models.Attendance{
		CustomerID:         input.CustomerID,
		AttendantID:        input.AttendantID,
		Title:              input.Title,
		ProblemDescription: input.ProblemDescription,
		Status:             status,
		Priority:           priority,
		DueDate:            input.DueDate,
	})
	if err != nil {
		return models.Attendance{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, attendance)
	s.mu.Unlock()
	return attendance, nil
}

func (s *AttendanceStore) Update(ctx context.Context, id uuid.UUID, input UpdateAttendanceInput) (attendance models.Attendance, err error) {
	s.begin()
	defer func() { s.end(err) }()

	fields, err := input.fields()
	if err != nil {
		return models.Attendance{}, err
	}
	if len(fields) == 0 {
		err = apperr.New(apperr.Validation, "no fields to update")
		return models.Attendance{}, err
	}

	attendance, err = s.gateway.Update(ctx, id, fields)
	if err != nil {
		return models.Attendance{}, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = attendance
			break
		}
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected = &attendance
	}
	s.mu.Unlock()
	return attendance, nil
}

func (s *AttendanceStore) Delete(ctx context.Context, id uuid.UUID) (err error) {
	s.begin()
	defer func() { s.end(err) }()

	if derr := s.gateway.Delete(ctx, id); derr != nil && !apperr.IsNotFound(derr) {
		err = derr
		return err
	}

	s.mu.Lock()
	items := s.items[:0]
	for _, a := range s.items {
		if a.ID != id {
			items = append(items, a)
		}
	}
	s.items = items
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	s.mu.Unlock()
	return nil
}

// AddComment appends an immutable note to an attendance thread.
func (s *AttendanceStore) AddComment(ctx context.Context, attendanceID, authorID uuid.UUID, text string) (comment models.Comment, err error) {
	s.begin()
	defer func() { s.end(err) }()

	if text == "" {
		err = apperr.New(apperr.Validation, "comment is required")
		return models.Comment{}, err
	}

	comment, err = s.comments.Insert(ctx, models.Comment{
		AttendanceID: attendanceID,
		AuthorID:     authorID,
		Comment:      text,
	})
	if err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// Comments returns the thread oldest first. Unlike the other operations it
// does not toggle loading: the thread is read on demand by the dialog, not
// held in the snapshot.
func (s *AttendanceStore) Comments(ctx context.Context, attendanceID uuid.UUID) ([]models.Comment, error) {
	comments, err := s.comments.ListByAttendance(ctx, attendanceID)
	if err != nil {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		s.notify()
		return nil, err
	}
	return comments, nil
}
