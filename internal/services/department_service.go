package services

import (
	"errors"
	"fmt"

	"github.com/hrcore/hr-admin-api/internal/models"
	"github.com/hrcore/hr-admin-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrInvalidDepartmentStatus = errors.New("invalid department status")
)

// DepartmentService handles department directory business logic.
type DepartmentService struct {
	departmentRepo repository.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departmentRepo repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// DepartmentInput represents the writable fields of a department.
type DepartmentInput struct {
	Name        string
	Description string
	Manager     string
	Status      models.DepartmentStatus
}

// ListDepartments returns departments matching the filter, newest first.
func (s *DepartmentService) ListDepartments(filter repository.ListFilter) ([]models.Department, int64, error) {
	departments, total, err := s.departmentRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, total, nil
}

// CreateDepartment creates a department.
func (s *DepartmentService) CreateDepartment(input DepartmentInput) (*models.Department, error) {
	if !models.ValidDepartmentStatus(input.Status) {
		return nil, ErrInvalidDepartmentStatus
	}

	department := &models.Department{
		Name:        input.Name,
		Description: input.Description,
		Manager:     input.Manager,
		Status:      input.Status,
	}

	if err := s.departmentRepo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return department, nil
}

// GetDepartment retrieves a department by ID.
func (s *DepartmentService) GetDepartment(id uint64) (*models.Department, error) {
	department, err := s.departmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}
	return department, nil
}

// UpdateDepartment updates a department.
func (s *DepartmentService) UpdateDepartment(id uint64, input DepartmentInput) (*models.Department, error) {
	department, err := s.GetDepartment(id)
	if err != nil {
		return nil, err
	}

	if !models.ValidDepartmentStatus(input.Status) {
		return nil, ErrInvalidDepartmentStatus
	}

	department.Name = input.Name
	department.Description = input.Description
	department.Manager = input.Manager
	department.Status = input.Status

	if err := s.departmentRepo.Update(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return department, nil
}

// DeleteDepartment hard deletes a department.
func (s *DepartmentService) DeleteDepartment(id uint64) error {
	if _, err := s.GetDepartment(id); err != nil {
		return err
	}

	if err := s.departmentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}
