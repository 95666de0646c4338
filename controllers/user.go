package controllers

import (
	"net/http"
	"stafftrack-backend/models"
	"stafftrack-backend/utils"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// UserSummary is the only user shape ever exposed by search: no password
// hash, role or business link.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

// SearchUsers returns users optionally filtered by a case-insensitive
// substring match on first or last name, ordered by first name
func (uc *UserController) SearchUsers(c *gin.Context) {
	nameQuery := strings.TrimSpace(c.Query("name"))

	query := uc.DB.Model(&models.User{}).
		Select("id", "first_name", "last_name", "email").
		Order("first_name asc")
	if nameQuery != "" {
		pattern := "%" + strings.ToLower(nameQuery) + "%"
		query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
	}

	users := []UserSummary{}
	if err := query.Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, users)
}
