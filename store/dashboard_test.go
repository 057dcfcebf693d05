package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"supportdesk-backend/models"
	"supportdesk-backend/store"
)

func seedAttendances(t *testing.T, f *fakeAttendances, statuses ...string) {
	t.Helper()
	for i, status := range statuses {
		_, err := f.Insert(context.Background(), models.Attendance{
			CustomerID:  uuid.New(),
			AttendantID: uuid.New(),
			Title:       fmt.Sprintf("case %d", i),
			Status:      status,
			Priority:    models.PriorityMedium,
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestDashboardCountsMatchTotal(t *testing.T) {
	f := newFakeAttendances()
	seedAttendances(t, f,
		models.StatusPending, models.StatusPending,
		models.StatusInProgress,
		models.StatusCompleted, models.StatusCompleted, models.StatusCompleted,
	)
	s := store.NewDashboardStore(f)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	summary := s.Summary()
	if summary == nil {
		t.Fatal("no summary after refresh")
	}

	if summary.PendingAttendances != 2 || summary.InProgressAttendances != 1 || summary.CompletedAttendances != 3 {
		t.Errorf("per-status counts wrong: %+v", summary)
	}
	// With only the three worked statuses present, their sum is the total.
	sum := summary.PendingAttendances + summary.InProgressAttendances + summary.CompletedAttendances
	if sum != summary.TotalAttendances {
		t.Errorf("pending+in_progress+completed = %d, total = %d", sum, summary.TotalAttendances)
	}
}

func TestDashboardTotalIncludesEveryStatus(t *testing.T) {
	f := newFakeAttendances()
	seedAttendances(t, f, models.StatusOpen, models.StatusPending, models.StatusCompleted)
	s := store.NewDashboardStore(f)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	summary := s.Summary()
	if summary.TotalAttendances != 3 {
		t.Errorf("total = %d, want 3", summary.TotalAttendances)
	}
	if summary.OpenAttendances != 1 {
		t.Errorf("open = %d, want 1", summary.OpenAttendances)
	}
}

func TestDashboardPriorityCounts(t *testing.T) {
	f := newFakeAttendances()
	for i, priority := range []string{
		models.PriorityLow,
		models.PriorityMedium, models.PriorityMedium,
		models.PriorityHigh,
		models.PriorityUrgent, models.PriorityUrgent, models.PriorityUrgent,
	} {
		_, err := f.Insert(context.Background(), models.Attendance{
			CustomerID:  uuid.New(),
			AttendantID: uuid.New(),
			Title:       fmt.Sprintf("case %d", i),
			Status:      models.StatusOpen,
			Priority:    priority,
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	s := store.NewDashboardStore(f)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	summary := s.Summary()
	if summary.LowPriority != 1 || summary.MediumPriority != 2 ||
		summary.HighPriority != 1 || summary.UrgentPriority != 3 {
		t.Errorf("per-priority counts wrong: %+v", summary)
	}
}

func TestDashboardRecentIsCappedAtFive(t *testing.T) {
	f := newFakeAttendances()
	seedAttendances(t, f,
		models.StatusOpen, models.StatusOpen, models.StatusOpen, models.StatusOpen,
		models.StatusOpen, models.StatusOpen, models.StatusOpen,
	)
	s := store.NewDashboardStore(f)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	summary := s.Summary()
	if len(summary.RecentAttendances) != 5 {
		t.Fatalf("recent = %d rows, want 5", len(summary.RecentAttendances))
	}
	// Newest first.
	if summary.RecentAttendances[0].Title != "case 6" {
		t.Errorf("first recent = %q, want newest", summary.RecentAttendances[0].Title)
	}
}
