package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sex values accepted for Employee.Sex.
const (
	SexMale   = "MALE"
	SexFemale = "FEMALE"
	SexOther  = "OTHER"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	DepartmentID uuid.UUID `gorm:"type:uuid;index;not null" json:"departmentId"`

	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Birthday         time.Time `gorm:"type:date" json:"birthday"`
	Sex              string    `gorm:"type:varchar(10)" json:"sex"`
	SocialSecurityNo string    `json:"socialSecurityNo"`
	Address          string    `json:"address"`
	Mobile           string    `json:"mobile"`
	EmployeeNo       string    `json:"employeeNo"`
	BankAccount      string    `json:"bankAccount"`
	HoursPerMonth    float64   `gorm:"type:decimal(6,2)" json:"hoursPerMonth"`
	DateOfHire       time.Time `gorm:"type:date" json:"dateOfHire"`
	IsTeamLeader     bool      `gorm:"default:false" json:"isTeamLeader"`

	User       User            `gorm:"foreignKey:UserID" json:"-"`
	Department Department      `gorm:"foreignKey:DepartmentID" json:"-"`
	Groups     []EmployeeGroup `gorm:"many2many:employee_group_members" json:"-"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
