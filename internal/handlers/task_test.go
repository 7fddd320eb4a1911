package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hrcore/hr-admin-api/internal/models"
	"github.com/hrcore/hr-admin-api/internal/repository"
	"github.com/hrcore/hr-admin-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type taskTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupTaskTestEnv(t *testing.T) taskTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Task{}))

	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	handler := NewTaskHandler(services.NewTaskService(taskRepo, projectRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/tasks", handler.ListTasks)
	r.POST("/api/tasks", handler.CreateTask)
	r.GET("/api/tasks/:id", handler.GetTask)
	r.PUT("/api/tasks/:id", handler.UpdateTask)
	r.DELETE("/api/tasks/:id", handler.DeleteTask)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return taskTestEnv{db: db, router: r}
}

func (env taskTestEnv) do(t *testing.T, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestTaskHandler_CreateTask(t *testing.T) {
	env := setupTaskTestEnv(t)
	require.NoError(t, env.db.Create(&models.Project{Name: "Alpha", Status: models.ProjectStatusInProgress}).Error)

	w := env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":       "Write report",
		"project_id":  1,
		"assigned_to": "Alice",
		"priority":    "High",
		"status":      "In Progress",
		"due_date":    "2024-07-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Write report", resp["title"])
	require.Equal(t, "In Progress", resp["status"])
	require.Equal(t, "High", resp["priority"])
}

func TestTaskHandler_CreateTask_DefaultsStatusAndPriority(t *testing.T) {
	env := setupTaskTestEnv(t)
	require.NoError(t, env.db.Create(&models.Project{Name: "Alpha", Status: models.ProjectStatusInProgress}).Error)

	w := env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":      "Write report",
		"project_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Todo", resp["status"])
	require.Equal(t, "Medium", resp["priority"])
}

func TestTaskHandler_CreateTask_UnknownProject(t *testing.T) {
	env := setupTaskTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":      "Orphan",
		"project_id": 42,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Details, "project_id")
}

func TestTaskHandler_CreateTask_InvalidStatus(t *testing.T) {
	env := setupTaskTestEnv(t)
	require.NoError(t, env.db.Create(&models.Project{Name: "Alpha", Status: models.ProjectStatusInProgress}).Error)

	w := env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":      "Typo",
		"project_id": 1,
		"status":     "Doen",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	env := setupTaskTestEnv(t)
	require.NoError(t, env.db.Create(&models.Project{Name: "Alpha", Status: models.ProjectStatusInProgress}).Error)
	require.NoError(t, env.db.Create(&models.Task{Title: "Draft", ProjectID: 1, Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow}).Error)

	w := env.do(t, http.MethodPut, "/api/tasks/1", map[string]interface{}{
		"title":      "Draft v2",
		"project_id": 1,
		"status":     "Done",
		"priority":   "Low",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var task models.Task
	require.NoError(t, env.db.First(&task, 1).Error)
	require.Equal(t, "Draft v2", task.Title)
	require.Equal(t, models.TaskStatusDone, task.Status)
}

func TestTaskHandler_SearchByTitle(t *testing.T) {
	env := setupTaskTestEnv(t)
	require.NoError(t, env.db.Create(&models.Project{Name: "Alpha", Status: models.ProjectStatusInProgress}).Error)
	require.NoError(t, env.db.Create(&models.Task{Title: "Quarterly report", ProjectID: 1, Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow}).Error)
	require.NoError(t, env.db.Create(&models.Task{Title: "Deploy", ProjectID: 1, Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow}).Error)

	w := env.do(t, http.MethodGet, "/api/tasks?search=REPORT", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	require.Equal(t, "Quarterly report", tasks[0]["title"])
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	env := setupTaskTestEnv(t)
	require.NoError(t, env.db.Create(&models.Project{Name: "Alpha", Status: models.ProjectStatusInProgress}).Error)
	require.NoError(t, env.db.Create(&models.Task{Title: "Draft", ProjectID: 1, Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow}).Error)

	w := env.do(t, http.MethodDelete, "/api/tasks/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/tasks/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
