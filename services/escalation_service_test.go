package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"supportdesk-backend/models"
	"supportdesk-backend/services"
)

type memEscalation struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]models.Attendance
	updates int
}

func newMemEscalation() *memEscalation {
	return &memEscalation{rows: map[uuid.UUID]models.Attendance{}}
}

func (m *memEscalation) add(priority, status string, due *time.Time) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := models.Attendance{
		ID:       uuid.New(),
		Title:    "case",
		Status:   status,
		Priority: priority,
		DueDate:  due,
	}
	m.rows[a.ID] = a
	return a.ID
}

func (m *memEscalation) ListOverdue(ctx context.Context, now time.Time) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Attendance
	for _, a := range m.rows {
		if a.DueDate != nil && a.DueDate.Before(now) && a.Status != models.StatusCompleted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memEscalation) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.rows[id]
	if v, ok := fields["priority"]; ok {
		a.Priority = v.(string)
	}
	m.rows[id] = a
	m.updates++
	return a, nil
}

func TestEscalateOverdueBumpsPriority(t *testing.T) {
	gw := newMemEscalation()
	yesterday := time.Now().AddDate(0, 0, -2)
	overdueID := gw.add(models.PriorityLow, models.StatusOpen, &yesterday)
	doneID := gw.add(models.PriorityLow, models.StatusCompleted, &yesterday)
	noDueID := gw.add(models.PriorityLow, models.StatusOpen, nil)

	s := services.NewEscalationService(gw)
	s.EscalateOverdue(context.Background())

	if got := gw.rows[overdueID].Priority; got != models.PriorityMedium {
		t.Errorf("overdue priority = %q, want medium", got)
	}
	if got := gw.rows[doneID].Priority; got != models.PriorityLow {
		t.Error("completed attendance must not be escalated")
	}
	if got := gw.rows[noDueID].Priority; got != models.PriorityLow {
		t.Error("attendance without a due date must not be escalated")
	}
}

func TestEscalateOverdueStopsAtUrgent(t *testing.T) {
	gw := newMemEscalation()
	yesterday := time.Now().AddDate(0, 0, -2)
	gw.add(models.PriorityUrgent, models.StatusOpen, &yesterday)

	s := services.NewEscalationService(gw)
	s.EscalateOverdue(context.Background())

	if gw.updates != 0 {
		t.Error("urgent attendances must not trigger an update")
	}
}
