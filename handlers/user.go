package handlers

import (
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves user registration, listing and role management.
type UserHandler struct {
	Svc user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// RegisterUser handles POST /users, saving registered user information.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
		return
	}

	id, err := h.Svc.Register(&u)
	if err != nil {
		utils.GetLogger().Error("Failed to register user",
			zap.String("email", u.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register user", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

// GetUsers handles GET /users for the dashboard page.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Svc.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load users", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin handles GET /users/admin/:email, reporting whether the user
// carries the admin role.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Svc.IsAdmin(email)
	if err != nil {
		utils.GetLogger().Error("Failed to check admin role",
			zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check admin role", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// GrantAdmin handles PUT /users/admin/:id, granting the admin role to the
// user with the given storage id. Route guards ensure the caller is an admin.
func (h *UserHandler) GrantAdmin(c *gin.Context) {
	id := c.Param("id")

	usr, err := h.Svc.GrantAdmin(id)
	if err != nil {
		utils.GetLogger().Error("Failed to grant admin role",
			zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to grant admin role", "")
		return
	}
	// The role just changed; drop any cached lookup for this user.
	middleware.InvalidateRoleCache(usr.Email)

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "modifiedCount": 1})
}
