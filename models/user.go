package models

import (
	"stafftrack-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleAdmin = "ADMIN"

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`

	Role       string    `gorm:"type:varchar(20);not null" json:"role"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null" json:"businessId"`

	Business Business  `gorm:"foreignKey:BusinessID" json:"-"`
	Employee *Employee `gorm:"foreignKey:UserID" json:"-"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
