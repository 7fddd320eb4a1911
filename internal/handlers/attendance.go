package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hrcore/hr-admin-api/internal/dto"
	apierrors "github.com/hrcore/hr-admin-api/internal/errors"
	"github.com/hrcore/hr-admin-api/internal/middleware"
	"github.com/hrcore/hr-admin-api/internal/services"
)

// AttendanceHandler coordinates attendance HTTP handlers.
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// CheckInRequest is the payload for check-in and check-out; the caller
// identity comes from the session, never from the body.
type CheckInRequest struct {
	Location string `json:"location"`
}

// CheckIn records the authenticated user's check-in for today.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	// Location is optional; a missing or empty body is fine.
	var req CheckInRequest
	_ = c.ShouldBindJSON(&req)

	record, err := h.attendanceService.CheckIn(userID, req.Location)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Checked in successfully",
		"attendance": dto.ToAttendanceDTO(*record),
	})
}

// CheckOut records the authenticated user's check-out for today.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req CheckInRequest
	_ = c.ShouldBindJSON(&req)

	record, err := h.attendanceService.CheckOut(userID, req.Location)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Checked out successfully",
		"attendance": dto.ToAttendanceDTO(*record),
	})
}

// GetTodayStatus returns the user's record for today with the allowed
// transitions.
func (h *AttendanceHandler) GetTodayStatus(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	status, err := h.attendanceService.GetTodayStatus(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch today's status")
		return
	}

	resp := dto.TodayStatusResponse{
		CanCheckIn:  status.CanCheckIn,
		CanCheckOut: status.CanCheckOut,
	}
	if status.Attendance != nil {
		record := dto.ToAttendanceDTO(*status.Attendance)
		resp.Attendance = &record
	}

	c.JSON(http.StatusOK, resp)
}

// ListAttendances returns attendance records joined with user identities,
// newest date first. Supports ?search= over the user's name/email.
func (h *AttendanceHandler) ListAttendances(c *gin.Context) {
	records, err := h.attendanceService.List(c.Query("search"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch attendance records")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceDTOs(records))
}

// GetAttendance returns a single attendance record.
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.attendanceService.Get(id)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceDTO(*record))
}

// DeleteAttendance removes a record. Admin operation; the state machine does
// not guard explicit deletes.
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.attendanceService.Delete(id); err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attendance record deleted successfully",
	})
}

func respondAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAlreadyCheckedIn):
		apierrors.AttendanceConflict(c, apierrors.ErrCodeAlreadyCheckedIn, "Already checked in today")
	case errors.Is(err, services.ErrAlreadyCheckedOut):
		apierrors.AttendanceConflict(c, apierrors.ErrCodeAlreadyCheckedOut, "Already checked out today")
	case errors.Is(err, services.ErrNotCheckedIn):
		apierrors.AttendanceConflict(c, apierrors.ErrCodeNotCheckedIn, "Not checked in yet")
	case errors.Is(err, services.ErrAttendanceNotFound):
		apierrors.NotFound(c, "Attendance record not found")
	default:
		apierrors.InternalError(c, "")
	}
}
