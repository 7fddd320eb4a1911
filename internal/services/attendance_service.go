package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hrcore/hr-admin-api/internal/constants"
	"github.com/hrcore/hr-admin-api/internal/models"
	"github.com/hrcore/hr-admin-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrAlreadyCheckedOut  = errors.New("already checked out today")
	ErrNotCheckedIn       = errors.New("not checked in yet")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// AttendanceService enforces the per-day check-in/check-out state machine:
// NoRecord → CheckedIn → CheckedOut, forward only.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	now            func() time.Time
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// TodayStatus describes what the user can still do today.
type TodayStatus struct {
	Attendance  *models.Attendance
	CanCheckIn  bool
	CanCheckOut bool
}

// CheckIn records the user's check-in for today. The record is created if
// absent; when it already exists the check-in columns are filled only while
// still unset, so two concurrent calls cannot both succeed.
func (s *AttendanceService) CheckIn(userID uint64, location string) (*models.Attendance, error) {
	now := s.now()
	date := now.Format(models.DateLayout)
	checkInTime := now.Format(models.TimeLayout)

	if location == "" {
		location = constants.DefaultLocation
	}

	record := &models.Attendance{
		UserID:          userID,
		Date:            date,
		CheckInTime:     &checkInTime,
		CheckInLocation: &location,
	}

	inserted, err := s.attendanceRepo.CreateIfAbsent(record)
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	if !inserted {
		rows, err := s.attendanceRepo.SetCheckIn(userID, date, checkInTime, location)
		if err != nil {
			return nil, fmt.Errorf("failed to check in: %w", err)
		}
		if rows == 0 {
			return nil, ErrAlreadyCheckedIn
		}
	}

	return s.attendanceRepo.FindByUserAndDate(userID, date)
}

// CheckOut records the user's check-out for today. The write only takes
// effect on a record that is checked in and not yet checked out; on a no-op
// the current record decides which state error applies.
func (s *AttendanceService) CheckOut(userID uint64, location string) (*models.Attendance, error) {
	now := s.now()
	date := now.Format(models.DateLayout)
	checkOutTime := now.Format(models.TimeLayout)

	if location == "" {
		location = constants.DefaultLocation
	}

	rows, err := s.attendanceRepo.SetCheckOut(userID, date, checkOutTime, location)
	if err != nil {
		return nil, fmt.Errorf("failed to check out: %w", err)
	}

	if rows == 0 {
		record, err := s.attendanceRepo.FindByUserAndDate(userID, date)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotCheckedIn
			}
			return nil, fmt.Errorf("failed to find attendance record: %w", err)
		}
		if record.CheckInTime == nil {
			return nil, ErrNotCheckedIn
		}
		return nil, ErrAlreadyCheckedOut
	}

	return s.attendanceRepo.FindByUserAndDate(userID, date)
}

// GetTodayStatus returns the user's record for today along with the allowed
// transitions. CanCheckIn and CanCheckOut are never both true; both are false
// once the day is fully recorded.
func (s *AttendanceService) GetTodayStatus(userID uint64) (*TodayStatus, error) {
	date := s.now().Format(models.DateLayout)

	record, err := s.attendanceRepo.FindByUserAndDate(userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &TodayStatus{CanCheckIn: true}, nil
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}

	return &TodayStatus{
		Attendance:  record,
		CanCheckIn:  record.CheckInTime == nil,
		CanCheckOut: record.CheckInTime != nil && record.CheckOutTime == nil,
	}, nil
}

// List returns attendance records joined with user identities, newest date
// first, optionally filtered by a substring of the user's name or email.
func (s *AttendanceService) List(search string) ([]models.Attendance, error) {
	records, err := s.attendanceRepo.List(search)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}

// Get returns a single attendance record.
func (s *AttendanceService) Get(id uint64) (*models.Attendance, error) {
	record, err := s.attendanceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}
	return record, nil
}

// Delete removes an attendance record. Admin operation, no state checks.
func (s *AttendanceService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.attendanceRepo.Delete(id)
}
