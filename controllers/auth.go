package controllers

import (
	"errors"
	"net/http"
	"stafftrack-backend/models"
	"stafftrack-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type RegisterUserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type RegisterBusinessInput struct {
	BusinessName   string `json:"businessName"`
	Address        string `json:"address"`
	TypeOfBusiness string `json:"typeOfBusiness"`
	EmployeesQty   string `json:"employeesQty"`
}

type RegisterInput struct {
	User     RegisterUserInput     `json:"user"`
	Business RegisterBusinessInput `json:"business"`
}

// Register creates a business and its first admin user in one transaction.
// Either both rows commit or neither does.
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.User.Email == "" || input.User.Password == "" || input.Business.BusinessName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	// Check if email already exists
	var existingUser models.User
	result := ac.DB.Select("email").Where("email = ?", input.User.Email).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email already exists")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var newUser models.User
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		business := models.Business{
			Name:           input.Business.BusinessName,
			Address:        input.Business.Address,
			Type:           input.Business.TypeOfBusiness,
			EmployeesCount: input.Business.EmployeesQty,
		}
		if err := tx.Create(&business).Error; err != nil {
			return err
		}

		newUser = models.User{
			Email:      input.User.Email,
			Password:   input.User.Password, // Hashed in BeforeCreate hook
			FirstName:  input.User.FirstName,
			LastName:   input.User.LastName,
			Role:       models.RoleAdmin,
			BusinessID: business.ID,
		}
		return tx.Create(&newUser).Error
	})
	if err != nil {
		// A concurrent registration with the same email loses the race here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Email already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	// Return response without password
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":        newUser.ID,
			"email":     newUser.Email,
			"firstName": newUser.FirstName,
			"lastName":  newUser.LastName,
			"role":      newUser.Role,
		},
	})
}
