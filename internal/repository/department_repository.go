package repository

import (
	"strings"

	"github.com/hrcore/hr-admin-api/internal/database"
	"github.com/hrcore/hr-admin-api/internal/models"
	"gorm.io/gorm"
)

// GormDepartmentRepository is a GORM implementation of DepartmentRepository
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// Create creates a new department
func (r *GormDepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// FindByID finds a department by ID
func (r *GormDepartmentRepository) FindByID(id uint64) (*models.Department, error) {
	var department models.Department
	if err := r.db.First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// List retrieves departments matching the filter, newest first
func (r *GormDepartmentRepository) List(filter ListFilter) ([]models.Department, int64, error) {
	query := r.db.Model(&models.Department{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(manager) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var departments []models.Department
	if err := query.Order("created_at DESC, id DESC").
		Scopes(database.Paginate(filter.Pagination)).
		Find(&departments).Error; err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

// Update persists changes to a department
func (r *GormDepartmentRepository) Update(department *models.Department) error {
	return r.db.Save(department).Error
}

// Delete hard deletes a department
func (r *GormDepartmentRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Department{}, id).Error
}
