package models

import "time"

// Attendance is one user's presence record for a single calendar day.
// Date is stored as "2006-01-02"; the check times are times of day ("15:04:05")
// and stay nil until the matching check-in/check-out happens. Once set they are
// never rewritten: the service layer only ever fills a nil column.
type Attendance struct {
	ID               uint64    `gorm:"primarykey" json:"id"`
	UserID           uint64    `gorm:"not null;uniqueIndex:idx_attendances_user_date" json:"user_id"`
	Date             string    `gorm:"type:date;not null;uniqueIndex:idx_attendances_user_date" json:"date"`
	CheckInTime      *string   `gorm:"type:time" json:"check_in_time"`
	CheckOutTime     *string   `gorm:"type:time" json:"check_out_time"`
	CheckInLocation  *string   `gorm:"type:varchar(255)" json:"check_in_location"`
	CheckOutLocation *string   `gorm:"type:varchar(255)" json:"check_out_location"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// DateLayout is the storage layout of Attendance.Date.
const DateLayout = "2006-01-02"

// TimeLayout is the storage layout of the check-in/check-out times.
const TimeLayout = "15:04:05"
