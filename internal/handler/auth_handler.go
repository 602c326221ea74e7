package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QNhat1998/sales-api/internal/domain"
	"github.com/QNhat1998/sales-api/internal/dto"
	"github.com/QNhat1998/sales-api/internal/service"
	"github.com/QNhat1998/sales-api/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles user registration
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if valid, msg := req.ValidateEmail(); !valid {
		response.Error(c, http.StatusBadRequest, "INVALID_EMAIL", msg, "")
		return
	}
	if valid, msg := req.ValidatePassword(); !valid {
		response.Error(c, http.StatusBadRequest, "WEAK_PASSWORD", msg, "")
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			response.Conflict(c, "Username or email already exists")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Created(c, result)
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		// Inactive accounts get the same status as bad credentials so
		// the response does not leak account state
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserInactive) {
			response.Unauthorized(c, "Invalid username or password")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, result)
}

// RefreshToken handles token rotation
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if domain.IsUnauthorizedError(err) || errors.Is(err, domain.ErrUserNotFound) {
			response.Unauthorized(c, "Invalid or expired refresh token")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, result)
}

// Logout revokes the presented access token
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	accessToken := c.GetString("access_token")

	if err := h.authService.Logout(c.Request.Context(), userID, accessToken); err != nil {
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Logged out successfully"})
}

// LogoutAll revokes every token issued to the authenticated user
// POST /api/v1/auth/logout-all
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	if err := h.authService.LogoutAll(c.Request.Context(), userID); err != nil {
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "All sessions logged out successfully"})
}

// Profile returns the authenticated principal
// GET /api/v1/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	response.Success(c, dto.ProfileResponse{
		UserID:   userID,
		Username: c.GetString("username"),
	})
}

// Me returns the full account of the authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(user))
}
