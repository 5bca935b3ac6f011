package handlers

import (
	"net/http"

	"food-court-api/config"
	"food-court-api/middleware"
	"food-court-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UpdateUserRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email"`
	Password *string          `json:"password"`
	Phone    *string          `json:"phone_no"`
	Role     *models.UserRole `json:"role"`
}

// ListUsers returns every user with their orders and reservations.
// Admin only (route-level guard).
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Orders").Preload("Reservations").Find(&users).Error; err != nil {
		internalError(c, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateUser lets an admin provision an account directly, role
// included. Self-service signup goes through Register instead.
func CreateUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}
	if req.Role == "" {
		req.Role = models.RoleCustomer
	}
	if !models.ValidRole(req.Role) {
		validationError(c, "Invalid role. Must be: customer, owner, or admin")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, "Failed to hash password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Phone:        req.Phone,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		writeError(c, err, "Username or email already registered")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GetUser returns one user. Non-admins can only fetch themselves.
func GetUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if middleware.GetRole(c) != models.RoleAdmin && id != middleware.GetUserID(c) {
		forbiddenError(c, "You can only view your own account")
		return
	}

	var user models.User
	if err := config.DB.Preload("Orders").Preload("Reservations").First(&user, id).Error; err != nil {
		notFoundError(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUser applies a partial patch: only fields present in the
// payload are touched.
func UpdateUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	callerRole := middleware.GetRole(c)
	if callerRole != models.RoleAdmin && id != middleware.GetUserID(c) {
		forbiddenError(c, "You can only update your own account")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		notFoundError(c, "User not found")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			internalError(c, "Failed to hash password")
			return
		}
		user.PasswordHash = string(hash)
	}
	if req.Role != nil {
		if callerRole != models.RoleAdmin {
			forbiddenError(c, "Only admins can change roles")
			return
		}
		if !models.ValidRole(*req.Role) {
			validationError(c, "Invalid role. Must be: customer, owner, or admin")
			return
		}
		user.Role = *req.Role
	}

	if err := config.DB.Save(&user).Error; err != nil {
		writeError(c, err, "Username or email already taken")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser removes a user and cascades to their outlets, orders and
// reservations. Admin only (route-level guard).
func DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		notFoundError(c, "User not found")
		return
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return deleteUserTree(tx, &user)
	})
	if err != nil {
		internalError(c, "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
