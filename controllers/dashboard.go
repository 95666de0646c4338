package controllers

import (
	"net/http"
	"stafftrack-backend/models"
	"stafftrack-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type DashboardOverview struct {
	TotalBusinesses  int64        `json:"totalBusinesses"`
	TotalUsers       int64        `json:"totalUsers"`
	TotalDepartments int64        `json:"totalDepartments"`
	TotalEmployees   int64        `json:"totalEmployees"`
	TotalGroups      int64        `json:"totalGroups"`
	TeamLeaders      int64        `json:"teamLeaders"`
	RecentHires      []RecentHire `json:"recentHires"`
}

type RecentHire struct {
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	DateOfHire time.Time `json:"dateOfHire"`
	Department string    `json:"department"`
}

// GetDashboardOverview aggregates entity counts for the dashboard landing page
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	dc.DB.Model(&models.Business{}).Count(&overview.TotalBusinesses)
	dc.DB.Model(&models.User{}).Count(&overview.TotalUsers)
	dc.DB.Model(&models.Department{}).Count(&overview.TotalDepartments)
	dc.DB.Model(&models.Employee{}).Count(&overview.TotalEmployees)
	dc.DB.Model(&models.EmployeeGroup{}).Count(&overview.TotalGroups)
	dc.DB.Model(&models.Employee{}).Where("is_team_leader = ?", true).Count(&overview.TeamLeaders)

	overview.RecentHires = []RecentHire{}
	if err := dc.DB.Model(&models.Employee{}).
		Select("employees.first_name", "employees.last_name", "employees.date_of_hire", "departments.name as department").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Order("employees.date_of_hire desc").
		Limit(5).
		Scan(&overview.RecentHires).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch dashboard overview")
		return
	}

	c.JSON(http.StatusOK, overview)
}
