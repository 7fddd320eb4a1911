package models

import "time"

type DepartmentStatus string

const (
	DepartmentStatusActive   DepartmentStatus = "Active"
	DepartmentStatusInactive DepartmentStatus = "Inactive"
)

// ValidDepartmentStatus reports whether s is a known department status.
func ValidDepartmentStatus(s DepartmentStatus) bool {
	return s == DepartmentStatusActive || s == DepartmentStatusInactive
}

type Department struct {
	ID          uint64           `gorm:"primarykey" json:"id"`
	Name        string           `gorm:"type:varchar(255);not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	Manager     string           `gorm:"type:varchar(255)" json:"manager"`
	Status      DepartmentStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
