package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Number  string    `json:"number"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	Phone   string    `json:"phone"`
	Country string    `json:"country"`
	// Advisory headcount, reconciled with actual Employee rows by the
	// count service; list/get responses report the computed count as well.
	EmployeesCount int    `gorm:"default:0" json:"employeesCount"`
	Type           string `json:"type"`

	Employees []Employee      `gorm:"foreignKey:DepartmentID" json:"employees,omitempty"`
	Groups    []EmployeeGroup `gorm:"foreignKey:DepartmentID" json:"-"`
}

func (d *Department) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}
