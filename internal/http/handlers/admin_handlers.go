package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// AdminHandlers handles admin HTTP requests
type AdminHandlers struct {
	adminSvc domain.AdminService
	querySvc domain.QueryService
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(adminSvc domain.AdminService, querySvc domain.QueryService) *AdminHandlers {
	return &AdminHandlers{
		adminSvc: adminSvc,
		querySvc: querySvc,
	}
}

// AdminRegisterRequest represents an admin registration request
type AdminRegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// AdminLoginRequest represents an admin login request
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles admin registration
func (h *AdminHandlers) Register(c *gin.Context) {
	var req AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, password and confirmPassword are required"})
		return
	}

	admin, err := h.adminSvc.Register(c.Request.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordTooShort), errors.Is(err, domain.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrAdminExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Admin already exists"})
		default:
			log.Printf("ADMIN_REGISTER_FAILED: email=%s error=%v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    admin.ID,
		"email": admin.Email,
	})
}

// Login handles admin login. Unknown email and wrong password produce the
// same response.
func (h *AdminHandlers) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	result, err := h.adminSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("ADMIN_LOGIN_FAILED: email=%s error=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      result.Token,
		"token_type": "Bearer",
		"expires_in": result.ExpiresIn,
		"admin": gin.H{
			"id":    result.Admin.ID,
			"email": result.Admin.Email,
		},
	})
}

// ListUsers handles the users-with-key-counts admin view
func (h *AdminHandlers) ListUsers(c *gin.Context) {
	rows, err := h.querySvc.UsersWithKeyCounts(c.Request.Context())
	if err != nil {
		log.Printf("ADMIN_LIST_USERS_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	users := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		users = append(users, gin.H{
			"id":         row.User.ID,
			"firstName":  row.User.FirstName,
			"lastName":   row.User.LastName,
			"email":      row.User.Email,
			"status":     row.User.Status,
			"createdAt":  row.User.CreatedAt,
			"totalKeys":  row.TotalKeys,
			"activeKeys": row.ActiveKeys,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// ListKeys handles the all-keys-with-owners admin view
func (h *AdminHandlers) ListKeys(c *gin.Context) {
	rows, err := h.querySvc.KeysWithOwners(c.Request.Context())
	if err != nil {
		log.Printf("ADMIN_LIST_KEYS_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list api keys"})
		return
	}

	keys := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, gin.H{
			"id":        row.Key.ID,
			"apiKey":    row.Key.Key,
			"createdAt": row.Key.CreatedAt,
			"expiresAt": row.Key.ExpiresAt,
			"status":    row.Status,
			"user": gin.H{
				"id":       row.Owner.ID,
				"fullName": row.Owner.FullName(),
				"email":    row.Owner.Email,
				"status":   row.Owner.Status,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"keys":  keys,
		"count": len(keys),
	})
}
