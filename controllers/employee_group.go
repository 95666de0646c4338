package controllers

import (
	"errors"
	"net/http"
	"stafftrack-backend/models"
	"stafftrack-backend/utils"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeGroupController struct {
	DB *gorm.DB
}

func NewEmployeeGroupController(db *gorm.DB) *EmployeeGroupController {
	return &EmployeeGroupController{DB: db}
}

// EmployeeGroupInput defines the expected JSON structure for creating and
// updating a group. MemberIDs is a pointer so an omitted list can be told
// apart from an explicitly empty one.
type EmployeeGroupInput struct {
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	DepartmentID *string   `json:"departmentId"`
	MemberIDs    *[]string `json:"memberIds"`
}

type groupDepartmentSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type groupMemberRef struct {
	ID uuid.UUID `json:"id"`
}

type employeeGroupResponse struct {
	ID           uuid.UUID               `json:"id"`
	Name         string                  `json:"name"`
	Description  *string                 `json:"description"`
	DepartmentID *uuid.UUID              `json:"departmentId"`
	Department   *groupDepartmentSummary `json:"department"`
	Members      []groupMemberRef        `json:"members"`
}

// groupRefs carries the validated pieces of an EmployeeGroupInput.
type groupRefs struct {
	name        string
	description *string
	department  *models.Department
	members     []models.Employee
}

// validateGroupInput validates the whole payload before any mutation: the
// trimmed name must be non-empty, a given department must exist, and every
// member id must resolve to an employee or the list is rejected as a whole.
// It writes the error response itself and returns false on failure.
func (gc *EmployeeGroupController) validateGroupInput(c *gin.Context, input *EmployeeGroupInput) (groupRefs, bool) {
	var refs groupRefs

	refs.name = strings.TrimSpace(input.Name)
	if refs.name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Name is required and must be a non-empty string")
		return refs, false
	}

	// Empty description is stored as null
	if input.Description != nil && strings.TrimSpace(*input.Description) != "" {
		refs.description = input.Description
	}

	if input.DepartmentID != nil && *input.DepartmentID != "" {
		departmentUUID, err := uuid.Parse(*input.DepartmentID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid department ID")
			return refs, false
		}
		var department models.Department
		if err := gc.DB.First(&department, "id = ?", departmentUUID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid department ID")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return refs, false
		}
		refs.department = &department
	}

	refs.members = []models.Employee{}
	if input.MemberIDs != nil && len(*input.MemberIDs) > 0 {
		memberUUIDs := make([]uuid.UUID, 0, len(*input.MemberIDs))
		for _, id := range *input.MemberIDs {
			memberUUID, err := uuid.Parse(id)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "One or more invalid employee IDs")
				return refs, false
			}
			memberUUIDs = append(memberUUIDs, memberUUID)
		}
		var employees []models.Employee
		if err := gc.DB.Where("id IN ?", memberUUIDs).Find(&employees).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return refs, false
		}
		if len(employees) != len(memberUUIDs) {
			utils.RespondWithError(c, http.StatusBadRequest, "One or more invalid employee IDs")
			return refs, false
		}
		refs.members = employees
	}

	return refs, true
}

// GetEmployeeGroups retrieves all groups with department and member summaries
func (gc *EmployeeGroupController) GetEmployeeGroups(c *gin.Context) {
	var groups []models.EmployeeGroup
	if err := gc.DB.Preload("Department").Preload("Members").Find(&groups).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch employee groups")
		return
	}

	response := make([]employeeGroupResponse, 0, len(groups))
	for _, group := range groups {
		response = append(response, newEmployeeGroupResponse(group))
	}

	c.JSON(http.StatusOK, response)
}

// GetEmployeeGroup retrieves a specific group by ID
func (gc *EmployeeGroupController) GetEmployeeGroup(c *gin.Context) {
	groupUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee group ID format")
		return
	}

	var group models.EmployeeGroup
	if err := gc.DB.Preload("Department").Preload("Members").
		First(&group, "id = ?", groupUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee group not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, newEmployeeGroupResponse(group))
}

// CreateEmployeeGroup creates a new group, optionally linked to a department
// and an initial member set
func (gc *EmployeeGroupController) CreateEmployeeGroup(c *gin.Context) {
	var input EmployeeGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	refs, ok := gc.validateGroupInput(c, &input)
	if !ok {
		return
	}

	group := models.EmployeeGroup{
		Name:        refs.name,
		Description: refs.description,
		Members:     refs.members,
	}
	if refs.department != nil {
		group.DepartmentID = &refs.department.ID
	}

	if err := gc.DB.Create(&group).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create employee group")
		return
	}

	group.Department = refs.department
	c.JSON(http.StatusCreated, newEmployeeGroupResponse(group))
}

// UpdateEmployeeGroup replaces the stored group wholesale: an omitted
// department disconnects any existing link and an omitted member list clears
// the membership, exactly like an empty one.
func (gc *EmployeeGroupController) UpdateEmployeeGroup(c *gin.Context) {
	groupUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee group ID format")
		return
	}

	var input EmployeeGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var group models.EmployeeGroup
	if err := gc.DB.First(&group, "id = ?", groupUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee group not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	refs, ok := gc.validateGroupInput(c, &input)
	if !ok {
		return
	}

	group.Name = refs.name
	group.Description = refs.description
	if refs.department != nil {
		group.DepartmentID = &refs.department.ID
	} else {
		group.DepartmentID = nil
	}

	err = gc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&group).Error; err != nil {
			return err
		}
		if len(refs.members) == 0 {
			return tx.Model(&group).Association("Members").Clear()
		}
		return tx.Model(&group).Association("Members").Replace(&refs.members)
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update employee group")
		return
	}

	group.Department = refs.department
	group.Members = refs.members
	c.JSON(http.StatusOK, newEmployeeGroupResponse(group))
}

// DeleteEmployeeGroup removes a group and its membership rows
func (gc *EmployeeGroupController) DeleteEmployeeGroup(c *gin.Context) {
	groupUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee group ID format")
		return
	}

	var group models.EmployeeGroup
	if err := gc.DB.First(&group, "id = ?", groupUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee group not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := gc.DB.Select("Members").Delete(&group).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete employee group")
		return
	}

	c.Status(http.StatusNoContent)
}

func newEmployeeGroupResponse(group models.EmployeeGroup) employeeGroupResponse {
	response := employeeGroupResponse{
		ID:           group.ID,
		Name:         group.Name,
		Description:  group.Description,
		DepartmentID: group.DepartmentID,
		Members:      make([]groupMemberRef, 0, len(group.Members)),
	}
	if group.Department != nil {
		response.Department = &groupDepartmentSummary{
			ID:   group.Department.ID,
			Name: group.Department.Name,
		}
	}
	for _, member := range group.Members {
		response.Members = append(response.Members, groupMemberRef{ID: member.ID})
	}
	return response
}
