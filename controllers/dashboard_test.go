package controllers_test

import (
	"net/http"
	"testing"
)

func TestDashboardOverview(t *testing.T) {
	r, db := newTestServer(t)

	business := createTestBusiness(t, db)
	user := createTestUser(t, db, business, "max@acme.test", "Max", "Muster")
	department := createTestDepartment(t, db, "Sales")
	createTestEmployee(t, db, user, department)

	w := doRequest(t, r, http.MethodGet, "/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		TotalBusinesses  int64 `json:"totalBusinesses"`
		TotalUsers       int64 `json:"totalUsers"`
		TotalDepartments int64 `json:"totalDepartments"`
		TotalEmployees   int64 `json:"totalEmployees"`
		TeamLeaders      int64 `json:"teamLeaders"`
		RecentHires      []struct {
			FirstName  string `json:"firstName"`
			Department string `json:"department"`
		} `json:"recentHires"`
	}
	decodeBody(t, w, &body)

	if body.TotalBusinesses != 1 || body.TotalUsers != 1 || body.TotalDepartments != 1 || body.TotalEmployees != 1 {
		t.Errorf("unexpected counts: %+v", body)
	}
	if body.TeamLeaders != 0 {
		t.Errorf("expected 0 team leaders, got %d", body.TeamLeaders)
	}
	if len(body.RecentHires) != 1 || body.RecentHires[0].Department != "Sales" {
		t.Errorf("unexpected recent hires: %+v", body.RecentHires)
	}
}
