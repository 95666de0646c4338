package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Business is the tenant organization created once at registration, together
// with its first ADMIN user.
type Business struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Address string    `json:"address"`
	Type    string    `json:"type"`
	// Self-reported headcount from the registration form, e.g. "10-50".
	EmployeesCount string `json:"employeesCount"`

	Users []User `gorm:"foreignKey:BusinessID" json:"-"`
}

func (b *Business) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
