package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hrcore/hr-admin-api/internal/constants"
	"github.com/hrcore/hr-admin-api/internal/models"
	"github.com/hrcore/hr-admin-api/internal/repository"
	"github.com/hrcore/hr-admin-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AttendanceHandlerTestSuite defines the test suite for AttendanceHandler
type AttendanceHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *AttendanceHandler
}

// SetupTest runs before each test
func (suite *AttendanceHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Attendance{},
	)
	suite.Require().NoError(err)

	attendanceRepo := repository.NewAttendanceRepository(suite.db)
	suite.handler = NewAttendanceHandler(services.NewAttendanceService(attendanceRepo))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *AttendanceHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AttendanceHandlerTestSuite) createTestUser(name, email string) *models.User {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

// createAuthContext builds a request context with the session user already
// resolved, the way RequireAuth leaves it.
func (suite *AttendanceHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

func (suite *AttendanceHandlerTestSuite) checkIn(userID uint64, location string) *httptest.ResponseRecorder {
	var body []byte
	if location != "" {
		body, _ = json.Marshal(map[string]string{"location": location})
	}
	c, w := suite.createAuthContext("POST", "/api/attendance/check-in", body, userID)
	suite.handler.CheckIn(c)
	return w
}

func (suite *AttendanceHandlerTestSuite) checkOut(userID uint64, location string) *httptest.ResponseRecorder {
	var body []byte
	if location != "" {
		body, _ = json.Marshal(map[string]string{"location": location})
	}
	c, w := suite.createAuthContext("POST", "/api/attendance/check-out", body, userID)
	suite.handler.CheckOut(c)
	return w
}

func (suite *AttendanceHandlerTestSuite) todayStatus(userID uint64) map[string]interface{} {
	c, w := suite.createAuthContext("GET", "/api/attendance/today-status", nil, userID)
	suite.handler.GetTodayStatus(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (suite *AttendanceHandlerTestSuite) TestCheckIn_Success() {
	user := suite.createTestUser("Alice", "alice@example.com")

	w := suite.checkIn(user.ID, "Office")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	attendance := resp["attendance"].(map[string]interface{})
	assert.NotNil(suite.T(), attendance["check_in_time"])
	assert.Equal(suite.T(), "Office", attendance["check_in_location"])
	assert.Nil(suite.T(), attendance["check_out_time"])
}

func (suite *AttendanceHandlerTestSuite) TestCheckIn_DefaultLocation() {
	user := suite.createTestUser("Alice", "alice@example.com")

	w := suite.checkIn(user.ID, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var record models.Attendance
	suite.Require().NoError(suite.db.Where("user_id = ?", user.ID).First(&record).Error)
	suite.Require().NotNil(record.CheckInLocation)
	assert.Equal(suite.T(), constants.DefaultLocation, *record.CheckInLocation)
}

func (suite *AttendanceHandlerTestSuite) TestCheckIn_Twice() {
	user := suite.createTestUser("Alice", "alice@example.com")

	suite.Require().Equal(http.StatusOK, suite.checkIn(user.ID, "Office").Code)

	var before models.Attendance
	suite.Require().NoError(suite.db.Where("user_id = ?", user.ID).First(&before).Error)

	w := suite.checkIn(user.ID, "Home")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "ALREADY_CHECKED_IN", resp["code"])

	// The failed second attempt must not touch the first record.
	var after models.Attendance
	suite.Require().NoError(suite.db.Where("user_id = ?", user.ID).First(&after).Error)
	assert.Equal(suite.T(), *before.CheckInTime, *after.CheckInTime)
	assert.Equal(suite.T(), "Office", *after.CheckInLocation)

	var count int64
	suite.db.Model(&models.Attendance{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *AttendanceHandlerTestSuite) TestCheckOut_WithoutCheckIn() {
	user := suite.createTestUser("Alice", "alice@example.com")

	w := suite.checkOut(user.ID, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "NOT_CHECKED_IN", resp["code"])
}

func (suite *AttendanceHandlerTestSuite) TestCheckOut_Twice() {
	user := suite.createTestUser("Alice", "alice@example.com")

	suite.Require().Equal(http.StatusOK, suite.checkIn(user.ID, "Office").Code)
	suite.Require().Equal(http.StatusOK, suite.checkOut(user.ID, "").Code)

	// Check-out without location falls back to the sentinel.
	var record models.Attendance
	suite.Require().NoError(suite.db.Where("user_id = ?", user.ID).First(&record).Error)
	suite.Require().NotNil(record.CheckOutLocation)
	assert.Equal(suite.T(), constants.DefaultLocation, *record.CheckOutLocation)

	w := suite.checkOut(user.ID, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "ALREADY_CHECKED_OUT", resp["code"])
}

func (suite *AttendanceHandlerTestSuite) TestTodayStatus_Transitions() {
	user := suite.createTestUser("Alice", "alice@example.com")

	// No record yet
	status := suite.todayStatus(user.ID)
	assert.True(suite.T(), status["can_check_in"].(bool))
	assert.False(suite.T(), status["can_check_out"].(bool))
	assert.Nil(suite.T(), status["attendance"])

	// Checked in
	suite.Require().Equal(http.StatusOK, suite.checkIn(user.ID, "").Code)
	status = suite.todayStatus(user.ID)
	assert.False(suite.T(), status["can_check_in"].(bool))
	assert.True(suite.T(), status["can_check_out"].(bool))

	// Checked out: both flags off
	suite.Require().Equal(http.StatusOK, suite.checkOut(user.ID, "").Code)
	status = suite.todayStatus(user.ID)
	assert.False(suite.T(), status["can_check_in"].(bool))
	assert.False(suite.T(), status["can_check_out"].(bool))
}

func (suite *AttendanceHandlerTestSuite) TestListAttendances_Search() {
	alice := suite.createTestUser("Alice", "alice@example.com")
	bob := suite.createTestUser("Bob", "bob@example.com")

	suite.Require().Equal(http.StatusOK, suite.checkIn(alice.ID, "Office").Code)
	suite.Require().Equal(http.StatusOK, suite.checkIn(bob.ID, "Office").Code)

	c, w := suite.createAuthContext("GET", "/api/attendances", nil, alice.ID)
	c.Request.URL.RawQuery = "search=ALICE"
	suite.handler.ListAttendances(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var records []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &records))
	suite.Require().Len(records, 1)
	userInfo := records[0]["user"].(map[string]interface{})
	assert.Equal(suite.T(), "alice@example.com", userInfo["email"])
}

func (suite *AttendanceHandlerTestSuite) TestListAttendances_OrderByDateDesc() {
	user := suite.createTestUser("Alice", "alice@example.com")

	older := &models.Attendance{UserID: user.ID, Date: "2024-05-31"}
	newer := &models.Attendance{UserID: user.ID, Date: "2024-06-01"}
	suite.Require().NoError(suite.db.Create(older).Error)
	suite.Require().NoError(suite.db.Create(newer).Error)

	c, w := suite.createAuthContext("GET", "/api/attendances", nil, user.ID)
	suite.handler.ListAttendances(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var records []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &records))
	suite.Require().Len(records, 2)
	assert.Equal(suite.T(), "2024-06-01", records[0]["date"])
	assert.Equal(suite.T(), "2024-05-31", records[1]["date"])
}

func (suite *AttendanceHandlerTestSuite) TestDeleteAttendance() {
	user := suite.createTestUser("Alice", "alice@example.com")
	suite.Require().Equal(http.StatusOK, suite.checkIn(user.ID, "").Code)

	var record models.Attendance
	suite.Require().NoError(suite.db.Where("user_id = ?", user.ID).First(&record).Error)

	c, w := suite.createAuthContext("DELETE", "/api/attendances/1", nil, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.DeleteAttendance(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Attendance{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func TestAttendanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceHandlerTestSuite))
}
