package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler issues bearer tokens for registered users.
type AuthHandler struct {
	Svc user.UserService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// IssueToken handles GET /jwt?email=. A token is issued only when a user
// record with that email exists; otherwise 403 with an empty token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	email := c.Query("email")

	token, err := h.Svc.IssueToken(email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownUser) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
			return
		}
		utils.GetLogger().Error("Failed to issue token",
			zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
