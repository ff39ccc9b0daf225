package handlers

import (
	"net/http"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/auth"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles HTTP requests for admin authentication
type AdminHandler struct {
	adminService *service.AdminService
	authService  *auth.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService, authService *auth.Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		authService:  authService,
	}
}

// Register handles POST /auth/register
// @Summary Register an admin account
// @Description Create an admin account gated by the registration secret
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.AuthResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid body or secret"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AdminHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.adminService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.authService.SetTokenCookie(c, resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login
// @Summary Log in as admin
// @Description Verify credentials and issue a 7-day token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} service.AuthResponse "Logged in"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.adminService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.authService.SetTokenCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Expire the auth cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Logged out"
// @Router /auth/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	h.authService.ClearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me handles GET /auth/me
// @Summary Current admin
// @Description Return the identity bound to the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Current admin"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":    c.GetString("admin_id"),
		"email": c.GetString("email"),
	})
}
