package services

import (
	"fmt"
	"time"

	"github.com/hrcore/hr-admin-api/internal/constants"
	"github.com/hrcore/hr-admin-api/internal/dto"
	"github.com/hrcore/hr-admin-api/internal/models"
	"github.com/hrcore/hr-admin-api/internal/repository"
)

// DashboardService computes the aggregate read-model. It holds no state of
// its own; every call reflects the store at call time.
type DashboardService struct {
	userRepo       repository.UserRepository
	projectRepo    repository.ProjectRepository
	taskRepo       repository.TaskRepository
	attendanceRepo repository.AttendanceRepository
	now            func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	attendanceRepo repository.AttendanceRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:       userRepo,
		projectRepo:    projectRepo,
		taskRepo:       taskRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// GetStats computes the dashboard snapshot as of now.
func (s *DashboardService) GetStats() (*dto.StatsSnapshot, error) {
	now := s.now()
	today := now.Format(models.DateLayout)

	projectActive := models.ProjectStatusInProgress
	projectCompleted := models.ProjectStatusCompleted
	taskTodo := models.TaskStatusTodo
	taskInProgress := models.TaskStatusInProgress
	taskDone := models.TaskStatusDone

	snapshot := &dto.StatsSnapshot{}
	var err error

	if snapshot.Projects.Total, err = s.projectRepo.Count(nil); err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	if snapshot.Projects.Active, err = s.projectRepo.Count(&projectActive); err != nil {
		return nil, fmt.Errorf("failed to count active projects: %w", err)
	}
	if snapshot.Projects.Completed, err = s.projectRepo.Count(&projectCompleted); err != nil {
		return nil, fmt.Errorf("failed to count completed projects: %w", err)
	}

	if snapshot.Tasks.Total, err = s.taskRepo.Count(nil); err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	if snapshot.Tasks.Todo, err = s.taskRepo.Count(&taskTodo); err != nil {
		return nil, fmt.Errorf("failed to count todo tasks: %w", err)
	}
	if snapshot.Tasks.InProgress, err = s.taskRepo.Count(&taskInProgress); err != nil {
		return nil, fmt.Errorf("failed to count in-progress tasks: %w", err)
	}
	if snapshot.Tasks.Completed, err = s.taskRepo.Count(&taskDone); err != nil {
		return nil, fmt.Errorf("failed to count done tasks: %w", err)
	}

	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	present, err := s.attendanceRepo.CountPresent(today)
	if err != nil {
		return nil, fmt.Errorf("failed to count present users: %w", err)
	}

	workingNow, err := s.attendanceRepo.ListWorkingNow(today)
	if err != nil {
		return nil, fmt.Errorf("failed to list current attendees: %w", err)
	}

	absent := totalUsers - present
	if absent < 0 {
		absent = 0
	}

	snapshot.Attendance = dto.AttendanceStats{
		Present:          present,
		Absent:           absent,
		WorkingNow:       int64(len(workingNow)),
		CurrentAttendees: dto.ToAttendanceDTOs(workingNow),
	}

	candidates, err := s.userRepo.ListWithBirthday()
	if err != nil {
		return nil, fmt.Errorf("failed to list birthdays: %w", err)
	}
	snapshot.Birthdays = dto.ToUserDTOs(UpcomingBirthdays(candidates, now))

	return snapshot, nil
}

// UpcomingBirthdays filters users whose birthday month/day falls within the
// inclusive window [today, today + BirthdayWindowMonths], ignoring the birth
// year. When the window crosses the year boundary (e.g. Nov → Feb) a birthday
// is inside if it is after the start or before the end.
func UpcomingBirthdays(users []models.User, today time.Time) []models.User {
	end := today.AddDate(0, constants.BirthdayWindowMonths, 0)

	startKey := monthDayKey(today)
	endKey := monthDayKey(end)

	var upcoming []models.User
	for _, user := range users {
		if user.Birthday == nil {
			continue
		}

		key := monthDayKey(*user.Birthday)
		inWindow := false
		if startKey <= endKey {
			inWindow = key >= startKey && key <= endKey
		} else {
			inWindow = key >= startKey || key <= endKey
		}

		if inWindow {
			upcoming = append(upcoming, user)
		}
	}

	return upcoming
}

func monthDayKey(t time.Time) int {
	return int(t.Month())*100 + t.Day()
}
