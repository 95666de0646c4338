package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeGroup is a named, optionally department-scoped set of employees.
// Membership lives in the employee_group_members join table and is replaced
// wholesale on update, never merged.
type EmployeeGroup struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Description  *string    `json:"description"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index" json:"departmentId"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"-"`
	Members    []Employee  `gorm:"many2many:employee_group_members" json:"-"`
}

func (g *EmployeeGroup) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}
