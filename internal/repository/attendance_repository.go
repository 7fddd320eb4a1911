package repository

import (
	"strings"

	"github.com/hrcore/hr-admin-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAttendanceRepository is a GORM implementation of AttendanceRepository
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// CreateIfAbsent inserts the record unless one already exists for its
// (user_id, date). The unique index arbitrates concurrent inserts; the loser
// sees zero rows affected instead of an error.
func (r *GormAttendanceRepository) CreateIfAbsent(attendance *models.Attendance) (bool, error) {
	result := r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(attendance)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// SetCheckIn fills the check-in columns only while check_in_time is unset, so
// a raced or repeated check-in can never overwrite the first timestamp.
func (r *GormAttendanceRepository) SetCheckIn(userID uint64, date, checkInTime, location string) (int64, error) {
	result := r.db.Model(&models.Attendance{}).
		Where("user_id = ? AND date = ? AND check_in_time IS NULL", userID, date).
		Updates(map[string]interface{}{
			"check_in_time":     checkInTime,
			"check_in_location": location,
		})

	return result.RowsAffected, result.Error
}

// SetCheckOut fills the check-out columns only for a record that is checked in
// and not yet checked out.
func (r *GormAttendanceRepository) SetCheckOut(userID uint64, date, checkOutTime, location string) (int64, error) {
	result := r.db.Model(&models.Attendance{}).
		Where("user_id = ? AND date = ? AND check_in_time IS NOT NULL AND check_out_time IS NULL", userID, date).
		Updates(map[string]interface{}{
			"check_out_time":     checkOutTime,
			"check_out_location": location,
		})

	return result.RowsAffected, result.Error
}

// FindByUserAndDate finds the record for a user on a calendar day
func (r *GormAttendanceRepository) FindByUserAndDate(userID uint64, date string) (*models.Attendance, error) {
	var attendance models.Attendance
	if err := r.db.Where("user_id = ? AND date = ?", userID, date).
		First(&attendance).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

// FindByID finds a record by ID with the owning user preloaded
func (r *GormAttendanceRepository) FindByID(id uint64) (*models.Attendance, error) {
	var attendance models.Attendance
	if err := r.db.Preload("User").First(&attendance, id).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

// List retrieves records joined with users, newest date first. Ties on date
// break by id so the order is stable.
func (r *GormAttendanceRepository) List(search string) ([]models.Attendance, error) {
	query := r.db.Model(&models.Attendance{}).Preload("User")

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("JOIN users ON users.id = attendances.user_id").
			Where("LOWER(users.name) LIKE ? OR LOWER(users.email) LIKE ?", pattern, pattern)
	}

	var attendances []models.Attendance
	if err := query.Order("attendances.date DESC, attendances.id DESC").
		Find(&attendances).Error; err != nil {
		return nil, err
	}

	return attendances, nil
}

// Delete hard deletes a record
func (r *GormAttendanceRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Attendance{}, id).Error
}

// CountPresent counts records on the date with check_in_time set
func (r *GormAttendanceRepository) CountPresent(date string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("date = ? AND check_in_time IS NOT NULL", date).
		Count(&count).Error
	return count, err
}

// ListWorkingNow lists records on the date that are checked in but not yet
// checked out, with user identities preloaded
func (r *GormAttendanceRepository) ListWorkingNow(date string) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := r.db.Preload("User").
		Where("date = ? AND check_in_time IS NOT NULL AND check_out_time IS NULL", date).
		Order("check_in_time ASC, id ASC").
		Find(&attendances).Error
	if err != nil {
		return nil, err
	}
	return attendances, nil
}
