package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dashkit/app/internal/middleware"
	"dashkit/app/internal/models"
)

// Page payloads are thin descriptors: the visual shell lives client-side and
// only needs to know which surface it is on and who is viewing it.

type pageResponse struct {
	Page string        `json:"page"`
	User *userResponse `json:"user,omitempty"`
}

func (h HandlerSet) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, pageResponse{Page: "login"})
}

func (h HandlerSet) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, pageResponse{Page: "register"})
}

func (h HandlerSet) DashboardPage(c *gin.Context) {
	h.renderProtected(c, "dashboard")
}

func (h HandlerSet) HomePage(c *gin.Context) {
	h.renderProtected(c, "home")
}

func (h HandlerSet) renderProtected(c *gin.Context, page string) {
	userVal, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user"})
		return
	}

	resp := toUserResponse(user)
	c.JSON(http.StatusOK, pageResponse{Page: page, User: &resp})
}
