package dto

import (
	"github.com/hrcore/hr-admin-api/internal/models"
)

// AttendanceUserDTO is the user identity attached to an attendance record.
type AttendanceUserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AttendanceDTO represents an attendance record in API responses
type AttendanceDTO struct {
	ID               uint64             `json:"id"`
	UserID           uint64             `json:"user_id"`
	Date             string             `json:"date"`
	CheckInTime      *string            `json:"check_in_time"`
	CheckOutTime     *string            `json:"check_out_time"`
	CheckInLocation  *string            `json:"check_in_location"`
	CheckOutLocation *string            `json:"check_out_location"`
	User             *AttendanceUserDTO `json:"user,omitempty"`
}

// TodayStatusResponse is the payload of GET /attendance/today-status
type TodayStatusResponse struct {
	Attendance  *AttendanceDTO `json:"attendance"`
	CanCheckIn  bool           `json:"can_check_in"`
	CanCheckOut bool           `json:"can_check_out"`
}

// ToAttendanceDTO converts an Attendance model to AttendanceDTO
func ToAttendanceDTO(attendance models.Attendance) AttendanceDTO {
	dto := AttendanceDTO{
		ID:               attendance.ID,
		UserID:           attendance.UserID,
		Date:             attendance.Date,
		CheckInTime:      attendance.CheckInTime,
		CheckOutTime:     attendance.CheckOutTime,
		CheckInLocation:  attendance.CheckInLocation,
		CheckOutLocation: attendance.CheckOutLocation,
	}

	// Include user if preloaded
	if attendance.User.ID != 0 {
		dto.User = &AttendanceUserDTO{
			ID:    attendance.User.ID,
			Name:  attendance.User.Name,
			Email: attendance.User.Email,
		}
	}

	return dto
}

// ToAttendanceDTOs converts a slice of records
func ToAttendanceDTOs(attendances []models.Attendance) []AttendanceDTO {
	dtos := make([]AttendanceDTO, len(attendances))
	for i, attendance := range attendances {
		dtos[i] = ToAttendanceDTO(attendance)
	}
	return dtos
}
