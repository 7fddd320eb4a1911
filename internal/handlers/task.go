package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/hrcore/hr-admin-api/internal/errors"
	"github.com/hrcore/hr-admin-api/internal/models"
	"github.com/hrcore/hr-admin-api/internal/repository"
	"github.com/hrcore/hr-admin-api/internal/services"
	"github.com/hrcore/hr-admin-api/internal/utils"
)

// TaskHandler coordinates task directory HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// TaskRequest is the write payload for create and update.
type TaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description"`
	ProjectID   uint64  `json:"project_id" binding:"required"`
	AssignedTo  string  `json:"assigned_to" binding:"max=255"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date"`
}

func (req *TaskRequest) toInput() (services.TaskInput, bool) {
	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := time.Parse(models.DateLayout, *req.DueDate)
		if err != nil {
			return services.TaskInput{}, false
		}
		dueDate = &parsed
	}

	return services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
		Priority:    models.TaskPriority(req.Priority),
		Status:      models.TaskStatus(req.Status),
		DueDate:     dueDate,
	}, true
}

// ListTasks returns tasks with their projects, newest first. Supports ?search=.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter := repository.ListFilter{
		Search:     c.Query("search"),
		Pagination: utils.GetPaginationParams(c),
	}

	tasks, _, err := h.taskService.ListTasks(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a task belonging to an existing project.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	input, ok := req.toInput()
	if !ok {
		apierrors.FieldValidationFailed(c, "due_date", "Must be a valid date (YYYY-MM-DD)")
		return
	}

	task, err := h.taskService.CreateTask(input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask returns a single task with its project.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask updates a task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	input, ok := req.toInput()
	if !ok {
		apierrors.FieldValidationFailed(c, "due_date", "Must be a valid date (YYYY-MM-DD)")
		return
	}

	task, err := h.taskService.UpdateTask(id, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask hard deletes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.FieldValidationFailed(c, "project_id", "Project does not exist")
	case errors.Is(err, services.ErrInvalidTaskStatus):
		apierrors.FieldValidationFailed(c, "status", "Must be 'Todo', 'In Progress' or 'Done'")
	case errors.Is(err, services.ErrInvalidTaskPriority):
		apierrors.FieldValidationFailed(c, "priority", "Must be 'Low', 'Medium' or 'High'")
	default:
		apierrors.InternalError(c, "")
	}
}
