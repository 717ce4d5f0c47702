package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dashkit/app/internal/middleware"
	"dashkit/app/internal/models"
	"dashkit/app/internal/session"
)

// navRecorder captures the target of a client-side navigation so the API can
// hand it back to the caller instead of redirecting a JSON request.
type navRecorder struct {
	path string
}

func (n *navRecorder) NavigateTo(path string) {
	n.path = path
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

type authResponse struct {
	User     userResponse `json:"user"`
	Redirect string       `json:"redirect"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nav := &navRecorder{}
	mgr := h.newManager(c, nav)
	mgr.Initialize()

	if err := mgr.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		h.notify.Error(err.Error())
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.notify.Success("logged in")
	sendAuthResponse(c, mgr.Snapshot(), nav.path)
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h HandlerSet) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nav := &navRecorder{}
	mgr := h.newManager(c, nav)
	mgr.Initialize()

	if err := mgr.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		h.notify.Error(err.Error())
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.notify.Success("account created")
	sendAuthResponse(c, mgr.Snapshot(), nav.path)
}

func (h HandlerSet) Logout(c *gin.Context) {
	nav := &navRecorder{}
	mgr := h.newManager(c, nav)
	mgr.Initialize()
	mgr.Logout()

	c.JSON(http.StatusOK, gin.H{"redirect": nav.path})
}

func (h HandlerSet) Me(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func sendAuthResponse(c *gin.Context, state session.State, redirect string) {
	if state.User == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing_user"})
		return
	}
	c.JSON(http.StatusOK, authResponse{
		User:     toUserResponse(*state.User),
		Redirect: redirect,
	})
}

func toUserResponse(user models.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     string(user.Role),
	}
}

func authErrorStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrInvalidEmailFormat):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrEmailAlreadyRegistered):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
