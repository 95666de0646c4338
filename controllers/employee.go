package controllers

import (
	"errors"
	"net/http"
	"stafftrack-backend/models"
	"stafftrack-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

// EmployeeInput defines the expected JSON structure for creating and updating
// an employee. Updates rewrite every field, so the same shape serves both.
type EmployeeInput struct {
	UserID           string        `json:"userId"`
	DepartmentID     string        `json:"departmentId"`
	FirstName        string        `json:"firstName"`
	LastName         string        `json:"lastName"`
	Birthday         string        `json:"birthday"`
	Sex              string        `json:"sex" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	SocialSecurityNo string        `json:"socialSecurityNo"`
	Address          string        `json:"address"`
	Mobile           string        `json:"mobile"`
	EmployeeNo       string        `json:"employeeNo"`
	BankAccount      string        `json:"bankAccount"`
	HoursPerMonth    utils.Decimal `json:"hoursPerMonth"`
	DateOfHire       string        `json:"dateOfHire"`
	IsTeamLeader     *bool         `json:"isTeamLeader"`
}

type employeeUserSummary struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type employeeDepartmentSummary struct {
	Name string `json:"name"`
}

type employeeResponse struct {
	models.Employee
	User       employeeUserSummary       `json:"user"`
	Department employeeDepartmentSummary `json:"department"`
}

type employeeRefs struct {
	user       models.User
	department models.Department
	birthday   time.Time
	dateOfHire time.Time
}

// validateEmployeeInput checks the referenced rows and parses the date and
// decimal fields; it writes the error response itself and returns false on
// failure.
func (ec *EmployeeController) validateEmployeeInput(c *gin.Context, input *EmployeeInput) (employeeRefs, bool) {
	var refs employeeRefs

	if input.UserID == "" || input.DepartmentID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "User ID and Department ID are required")
		return refs, false
	}

	userUUID, err := uuid.Parse(input.UserID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID")
		return refs, false
	}
	departmentUUID, err := uuid.Parse(input.DepartmentID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid department ID")
		return refs, false
	}

	if err := ec.DB.First(&refs.user, "id = ?", userUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return refs, false
	}
	if err := ec.DB.First(&refs.department, "id = ?", departmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid department ID")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return refs, false
	}

	refs.birthday, err = utils.ParseDate(input.Birthday)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid birthday")
		return refs, false
	}
	refs.dateOfHire, err = utils.ParseDate(input.DateOfHire)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date of hire")
		return refs, false
	}

	if input.HoursPerMonth < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Hours per month must be non-negative")
		return refs, false
	}

	return refs, true
}

// GetEmployees retrieves all employees joined with their user and department
// summaries
func (ec *EmployeeController) GetEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := ec.DB.Preload("User").Preload("Department").Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}

	response := make([]employeeResponse, 0, len(employees))
	for _, employee := range employees {
		response = append(response, newEmployeeResponse(employee, employee.User, employee.Department))
	}

	c.JSON(http.StatusOK, response)
}

// GetEmployee retrieves a specific employee by ID
func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	employeeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	var employee models.Employee
	if err := ec.DB.First(&employee, "id = ?", employeeUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, employee)
}

// CreateEmployee creates a new employee linked to an existing user and
// department
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var input EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	refs, ok := ec.validateEmployeeInput(c, &input)
	if !ok {
		return
	}

	employee := models.Employee{
		UserID:           refs.user.ID,
		DepartmentID:     refs.department.ID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Birthday:         refs.birthday,
		Sex:              input.Sex,
		SocialSecurityNo: input.SocialSecurityNo,
		Address:          input.Address,
		Mobile:           input.Mobile,
		EmployeeNo:       input.EmployeeNo,
		BankAccount:      input.BankAccount,
		HoursPerMonth:    float64(input.HoursPerMonth),
		DateOfHire:       refs.dateOfHire,
	}
	if input.IsTeamLeader != nil {
		employee.IsTeamLeader = *input.IsTeamLeader
	}

	if err := ec.DB.Create(&employee).Error; err != nil {
		// One employee record per user
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "User is already linked to an employee")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, newEmployeeResponse(employee, refs.user, refs.department))
}

// UpdateEmployee rewrites every field of an existing employee
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	employeeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	var input EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var employee models.Employee
	if err := ec.DB.First(&employee, "id = ?", employeeUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	refs, ok := ec.validateEmployeeInput(c, &input)
	if !ok {
		return
	}

	employee.UserID = refs.user.ID
	employee.DepartmentID = refs.department.ID
	employee.FirstName = input.FirstName
	employee.LastName = input.LastName
	employee.Birthday = refs.birthday
	employee.Sex = input.Sex
	employee.SocialSecurityNo = input.SocialSecurityNo
	employee.Address = input.Address
	employee.Mobile = input.Mobile
	employee.EmployeeNo = input.EmployeeNo
	employee.BankAccount = input.BankAccount
	employee.HoursPerMonth = float64(input.HoursPerMonth)
	employee.DateOfHire = refs.dateOfHire
	employee.IsTeamLeader = input.IsTeamLeader != nil && *input.IsTeamLeader

	if err := ec.DB.Save(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "User is already linked to an employee")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully"})
}

// DeleteEmployee removes an employee and its group memberships
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	employeeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	var employee models.Employee
	if err := ec.DB.First(&employee, "id = ?", employeeUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := ec.DB.Select("Groups").Delete(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

func newEmployeeResponse(employee models.Employee, user models.User, department models.Department) employeeResponse {
	return employeeResponse{
		Employee: employee,
		User: employeeUserSummary{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		Department: employeeDepartmentSummary{
			Name: department.Name,
		},
	}
}
