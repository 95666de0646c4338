package controllers

import (
	"errors"
	"net/http"
	"stafftrack-backend/models"
	"stafftrack-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

// CreateDepartmentInput defines the expected JSON structure for creating a department
type CreateDepartmentInput struct {
	Name           string `json:"name" binding:"required"`
	Number         string `json:"number"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Phone          string `json:"phone"`
	Country        string `json:"country"`
	EmployeesCount int    `json:"employeesCount"`
	Type           string `json:"type"`
}

// UpdateDepartmentInput defines the expected JSON structure for updating a department
type UpdateDepartmentInput struct {
	Name           *string `json:"name"`
	Number         *string `json:"number"`
	Address        *string `json:"address"`
	City           *string `json:"city"`
	Phone          *string `json:"phone"`
	Country        *string `json:"country"`
	EmployeesCount *int    `json:"employeesCount"`
	Type           *string `json:"type"`
}

type departmentResponse struct {
	models.Department
	// Actual number of employees referencing the department, as opposed to
	// the advisory EmployeesCount column.
	EmployeeCount int64 `json:"employeeCount"`
}

// GetDepartments retrieves all departments with their computed employee counts
func (dc *DepartmentController) GetDepartments(c *gin.Context) {
	var departments []models.Department
	if err := dc.DB.Find(&departments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch departments")
		return
	}

	type countRow struct {
		DepartmentID uuid.UUID
		Total        int64
	}
	var rows []countRow
	if err := dc.DB.Model(&models.Employee{}).
		Select("department_id, COUNT(*) as total").
		Group("department_id").
		Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch departments")
		return
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.DepartmentID] = row.Total
	}

	response := make([]departmentResponse, 0, len(departments))
	for _, department := range departments {
		response = append(response, departmentResponse{
			Department:    department,
			EmployeeCount: counts[department.ID],
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetDepartment retrieves a specific department including its employees
func (dc *DepartmentController) GetDepartment(c *gin.Context) {
	departmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid department ID format")
		return
	}

	var department models.Department
	if err := dc.DB.Preload("Employees").First(&department, "id = ?", departmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Department not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, departmentResponse{
		Department:    department,
		EmployeeCount: int64(len(department.Employees)),
	})
}

// CreateDepartment persists a new department
func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	var input CreateDepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	department := models.Department{
		Name:           input.Name,
		Number:         input.Number,
		Address:        input.Address,
		City:           input.City,
		Phone:          input.Phone,
		Country:        input.Country,
		EmployeesCount: input.EmployeesCount,
		Type:           input.Type,
	}

	if err := dc.DB.Create(&department).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create department")
		return
	}

	c.JSON(http.StatusCreated, department)
}

// UpdateDepartment partially updates an existing department; omitted fields
// keep their stored value
func (dc *DepartmentController) UpdateDepartment(c *gin.Context) {
	departmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid department ID format")
		return
	}

	var input UpdateDepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var department models.Department
	if err := dc.DB.First(&department, "id = ?", departmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Department not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		department.Name = *input.Name
	}
	if input.Number != nil {
		department.Number = *input.Number
	}
	if input.Address != nil {
		department.Address = *input.Address
	}
	if input.City != nil {
		department.City = *input.City
	}
	if input.Phone != nil {
		department.Phone = *input.Phone
	}
	if input.Country != nil {
		department.Country = *input.Country
	}
	if input.EmployeesCount != nil {
		department.EmployeesCount = *input.EmployeesCount
	}
	if input.Type != nil {
		department.Type = *input.Type
	}

	if err := dc.DB.Save(&department).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update department")
		return
	}

	var employeeCount int64
	dc.DB.Model(&models.Employee{}).Where("department_id = ?", department.ID).Count(&employeeCount)

	c.JSON(http.StatusOK, departmentResponse{
		Department:    department,
		EmployeeCount: employeeCount,
	})
}

// DeleteDepartment removes a department. Deletion is restricted while
// employees still reference it; optional group links are cleared.
func (dc *DepartmentController) DeleteDepartment(c *gin.Context) {
	departmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid department ID format")
		return
	}

	var employeeCount int64
	if err := dc.DB.Model(&models.Employee{}).
		Where("department_id = ?", departmentUUID).
		Count(&employeeCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if employeeCount > 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Department has assigned employees")
		return
	}

	var rowsAffected int64
	err = dc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.EmployeeGroup{}).
			Where("department_id = ?", departmentUUID).
			Update("department_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Department{}, "id = ?", departmentUUID)
		rowsAffected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete department")
		return
	}
	if rowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Department not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Department deleted successfully"})
}
