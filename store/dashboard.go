package store

import (
	"context"

	"supportdesk-backend/models"
)

const recentLimit = 5

// DashboardGateway is the aggregation slice of the attendance gateway: two
// grouped-count queries plus one recency-limited detail query.
// remote.Attendances satisfies it.
type DashboardGateway interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByPriority(ctx context.Context) (map[string]int64, error)
	Recent(ctx context.Context, limit int) ([]models.Attendance, error)
}

type DashboardStore struct {
	status
	gateway DashboardGateway

	summary *models.DashboardSummary
}

func NewDashboardStore(gateway DashboardGateway) *DashboardStore {
	return &DashboardStore{gateway: gateway}
}

// Summary returns the result of the last successful Refresh, nil before the
// first one.
func (s *DashboardStore) Summary() *models.DashboardSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return nil
	}
	out := *s.summary
	return &out
}

// Refresh recomputes the summary: three round trips total. The total is the
// sum of the grouped status counts, so it always matches the per-status
// breakdown.
func (s *DashboardStore) Refresh(ctx context.Context) (err error) {
	s.begin()
	defer func() { s.end(err) }()

	byStatus, err := s.gateway.CountByStatus(ctx)
	if err != nil {
		return err
	}
	byPriority, err := s.gateway.CountByPriority(ctx)
	if err != nil {
		return err
	}
	recent, err := s.gateway.Recent(ctx, recentLimit)
	if err != nil {
		return err
	}

	summary := models.DashboardSummary{
		OpenAttendances:       byStatus[models.StatusOpen],
		PendingAttendances:    byStatus[models.StatusPending],
		InProgressAttendances: byStatus[models.StatusInProgress],
		CompletedAttendances:  byStatus[models.StatusCompleted],
		LowPriority:           byPriority[models.PriorityLow],
		MediumPriority:        byPriority[models.PriorityMedium],
		HighPriority:          byPriority[models.PriorityHigh],
		UrgentPriority:        byPriority[models.PriorityUrgent],
		RecentAttendances:     recent,
	}
	for _, n := range byStatus {
		summary.TotalAttendances += n
	}

	s.mu.Lock()
	s.summary = &summary
	s.mu.Unlock()
	return nil
}
