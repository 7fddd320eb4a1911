package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/hrcore/hr-admin-api/internal/errors"
	"github.com/hrcore/hr-admin-api/internal/models"
	"github.com/hrcore/hr-admin-api/internal/repository"
	"github.com/hrcore/hr-admin-api/internal/services"
	"github.com/hrcore/hr-admin-api/internal/utils"
)

// DepartmentHandler coordinates department directory HTTP handlers.
type DepartmentHandler struct {
	departmentService *services.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(departmentService *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

// DepartmentRequest is the write payload for create and update.
type DepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Manager     string `json:"manager" binding:"max=255"`
	Status      string `json:"status" binding:"required,oneof='Active' 'Inactive'"`
}

// ListDepartments returns departments, newest first. Supports ?search= over
// name/description/manager.
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	filter := repository.ListFilter{
		Search:     c.Query("search"),
		Pagination: utils.GetPaginationParams(c),
	}

	departments, _, err := h.departmentService.ListDepartments(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch departments")
		return
	}

	c.JSON(http.StatusOK, departments)
}

// CreateDepartment creates a department.
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	department, err := h.departmentService.CreateDepartment(services.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
		Manager:     req.Manager,
		Status:      models.DepartmentStatus(req.Status),
	})
	if err != nil {
		respondDepartmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, department)
}

// GetDepartment returns a single department.
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	department, err := h.departmentService.GetDepartment(id)
	if err != nil {
		respondDepartmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

// UpdateDepartment updates a department.
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	department, err := h.departmentService.UpdateDepartment(id, services.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
		Manager:     req.Manager,
		Status:      models.DepartmentStatus(req.Status),
	})
	if err != nil {
		respondDepartmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

// DeleteDepartment hard deletes a department.
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.departmentService.DeleteDepartment(id); err != nil {
		respondDepartmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Department deleted successfully",
	})
}

func respondDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDepartmentNotFound):
		apierrors.NotFound(c, "Department not found")
	case errors.Is(err, services.ErrInvalidDepartmentStatus):
		apierrors.FieldValidationFailed(c, "status", "Must be Active or Inactive")
	default:
		apierrors.InternalError(c, "")
	}
}
