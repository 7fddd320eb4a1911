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

func setupDepartmentTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Department{}))

	handler := NewDepartmentHandler(services.NewDepartmentService(repository.NewDepartmentRepository(db)))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/departments", handler.ListDepartments)
	r.POST("/api/departments", handler.CreateDepartment)
	r.GET("/api/departments/:id", handler.GetDepartment)
	r.PUT("/api/departments/:id", handler.UpdateDepartment)
	r.DELETE("/api/departments/:id", handler.DeleteDepartment)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, r
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
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
	r.ServeHTTP(w, req)
	return w
}

func TestDepartmentHandler_CreateAndGet(t *testing.T) {
	_, r := setupDepartmentTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/departments", map[string]string{
		"name":        "Engineering",
		"description": "Builds things",
		"manager":     "Alice Nguyen",
		"status":      "Active",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/departments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Engineering", resp["name"])
	require.Equal(t, "Active", resp["status"])
}

func TestDepartmentHandler_Create_InvalidStatus(t *testing.T) {
	_, r := setupDepartmentTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/departments", map[string]string{
		"name":   "Engineering",
		"status": "Paused",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "VALIDATION_FAILED", resp.Code)
	require.Contains(t, resp.Details, "status")
}

func TestDepartmentHandler_SearchAcrossFields(t *testing.T) {
	db, r := setupDepartmentTestEnv(t)

	require.NoError(t, db.Create(&models.Department{Name: "Engineering", Manager: "Alice", Status: models.DepartmentStatusActive}).Error)
	require.NoError(t, db.Create(&models.Department{Name: "Sales", Manager: "Bob", Status: models.DepartmentStatusActive}).Error)

	// Substring match on the manager field, case-insensitive
	w := doJSON(t, r, http.MethodGet, "/api/departments?search=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var departments []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &departments))
	require.Len(t, departments, 1)
	require.Equal(t, "Engineering", departments[0]["name"])
}

func TestDepartmentHandler_Update(t *testing.T) {
	db, r := setupDepartmentTestEnv(t)
	require.NoError(t, db.Create(&models.Department{Name: "Engineering", Status: models.DepartmentStatusActive}).Error)

	w := doJSON(t, r, http.MethodPut, "/api/departments/1", map[string]string{
		"name":   "Engineering",
		"status": "Inactive",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var department models.Department
	require.NoError(t, db.First(&department, 1).Error)
	require.Equal(t, models.DepartmentStatusInactive, department.Status)
}

func TestDepartmentHandler_Delete(t *testing.T) {
	db, r := setupDepartmentTestEnv(t)
	require.NoError(t, db.Create(&models.Department{Name: "Engineering", Status: models.DepartmentStatusActive}).Error)

	w := doJSON(t, r, http.MethodDelete, "/api/departments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Department{}).Count(&count)
	require.Equal(t, int64(0), count)
}
