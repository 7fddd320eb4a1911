package dto

// ProjectStats holds the project counters of the dashboard.
type ProjectStats struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

// TaskStats holds the task counters of the dashboard.
type TaskStats struct {
	Total      int64 `json:"total"`
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
}

// AttendanceStats holds today's presence counters. Absent is always
// total users minus Present.
type AttendanceStats struct {
	Present          int64           `json:"present"`
	Absent           int64           `json:"absent"`
	WorkingNow       int64           `json:"working_now"`
	CurrentAttendees []AttendanceDTO `json:"current_attendees"`
}

// StatsSnapshot is the aggregate read-model returned by GET /dashboard/stats,
// computed fresh on every call.
type StatsSnapshot struct {
	Projects   ProjectStats    `json:"projects"`
	Tasks      TaskStats       `json:"tasks"`
	Attendance AttendanceStats `json:"attendance"`
	Birthdays  []UserDTO       `json:"birthdays"`
}

// PaginationResponse represents pagination metadata in list responses
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}
