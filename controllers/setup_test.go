package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"stafftrack-backend/models"
	"stafftrack-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// A fresh connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Business{},
		&models.User{},
		&models.Department{},
		&models.Employee{},
		&models.EmployeeGroup{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return routes.SetupRouter(db), db
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, w, &body)
	return body["error"]
}

func createTestBusiness(t *testing.T, db *gorm.DB) models.Business {
	t.Helper()
	business := models.Business{Name: "Acme", Address: "Main St 1", Type: "Retail", EmployeesCount: "10-50"}
	if err := db.Create(&business).Error; err != nil {
		t.Fatalf("create business: %v", err)
	}
	return business
}

func createTestUser(t *testing.T, db *gorm.DB, business models.Business, email, firstName, lastName string) models.User {
	t.Helper()

	user := models.User{
		Email:      email,
		Password:   "pw123456",
		FirstName:  firstName,
		LastName:   lastName,
		Role:       models.RoleAdmin,
		BusinessID: business.ID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createTestDepartment(t *testing.T, db *gorm.DB, name string) models.Department {
	t.Helper()
	department := models.Department{Name: name, City: "Berlin", Country: "Germany", Type: "Operations"}
	if err := db.Create(&department).Error; err != nil {
		t.Fatalf("create department %s: %v", name, err)
	}
	return department
}

func createTestEmployee(t *testing.T, db *gorm.DB, user models.User, department models.Department) models.Employee {
	t.Helper()
	employee := models.Employee{
		UserID:        user.ID,
		DepartmentID:  department.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Birthday:      time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Sex:           models.SexOther,
		EmployeeNo:    "E-100",
		HoursPerMonth: 160,
		DateOfHire:    time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("create employee for %s: %v", user.Email, err)
	}
	return employee
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
