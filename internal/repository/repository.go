package repository

import (
	"github.com/hrcore/hr-admin-api/internal/models"
	"github.com/hrcore/hr-admin-api/internal/utils"
)

// ListFilter holds the common options for directory list queries.
type ListFilter struct {
	Search     string
	Pagination utils.PaginationParams
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// EmailTaken reports whether another user (excluding excludeID, 0 to
	// exclude nobody) already uses the email.
	EmailTaken(email string, excludeID uint64) (bool, error)

	// List retrieves users matching the filter, newest first
	List(filter ListFilter) ([]models.User, int64, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Delete hard deletes a user; attendance rows cascade
	Delete(id uint64) error

	// Count returns the total number of users
	Count() (int64, error)

	// ListWithBirthday lists users that have a birthday on record
	ListWithBirthday() ([]models.User, error)
}

// DepartmentRepository defines the interface for department data access
type DepartmentRepository interface {
	Create(department *models.Department) error
	FindByID(id uint64) (*models.Department, error)
	List(filter ListFilter) ([]models.Department, int64, error)
	Update(department *models.Department) error
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id uint64) (*models.Project, error)

	// Exists reports whether a project with the id exists
	Exists(id uint64) (bool, error)

	List(filter ListFilter) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uint64) error

	// Count returns the number of projects, optionally restricted to a status
	Count(status *models.ProjectStatus) (int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	List(filter ListFilter) ([]models.Task, int64, error)
	Update(task *models.Task) error
	Delete(id uint64) error

	// Count returns the number of tasks, optionally restricted to a status
	Count(status *models.TaskStatus) (int64, error)
}

// AttendanceRepository defines the interface for attendance data access.
// The write path is split into the two statements the check-in upsert needs:
// an insert guarded by the (user_id, date) unique index and a conditional
// update that only ever fills an unset column.
type AttendanceRepository interface {
	// CreateIfAbsent inserts the record unless one already exists for its
	// (user_id, date). Returns true when the insert took effect.
	CreateIfAbsent(attendance *models.Attendance) (bool, error)

	// SetCheckIn fills check_in_time/check_in_location for the day's record
	// if check_in_time is still unset. Returns the number of rows changed.
	SetCheckIn(userID uint64, date, checkInTime, location string) (int64, error)

	// SetCheckOut fills check_out_time/check_out_location if the record is
	// checked in and not yet checked out. Returns the number of rows changed.
	SetCheckOut(userID uint64, date, checkOutTime, location string) (int64, error)

	// FindByUserAndDate finds the record for a user on a calendar day
	FindByUserAndDate(userID uint64, date string) (*models.Attendance, error)

	// FindByID finds a record by ID with the owning user preloaded
	FindByID(id uint64) (*models.Attendance, error)

	// List retrieves records joined with users, newest date first, optionally
	// filtered by a case-insensitive substring of the user's name or email
	List(search string) ([]models.Attendance, error)

	// Delete hard deletes a record (admin operation)
	Delete(id uint64) error

	// CountPresent counts records on the date with check_in_time set
	CountPresent(date string) (int64, error)

	// ListWorkingNow lists records on the date that are checked in but not
	// yet checked out, with user identities preloaded
	ListWorkingNow(date string) ([]models.Attendance, error)
}
