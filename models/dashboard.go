package models

// DashboardSummary is a derived read model, recomputed on every refresh and
// never persisted.
type DashboardSummary struct {
	TotalAttendances      int64 `json:"total_attendances"`
	OpenAttendances       int64 `json:"open_attendances"`
	PendingAttendances    int64 `json:"pending_attendances"`
	InProgressAttendances int64 `json:"in_progress_attendances"`
	CompletedAttendances  int64 `json:"completed_attendances"`

	LowPriority    int64 `json:"low_priority"`
	MediumPriority int64 `json:"medium_priority"`
	HighPriority   int64 `json:"high_priority"`
	UrgentPriority int64 `json:"urgent_priority"`

	RecentAttendances []Attendance `json:"recent_attendances"`
}
