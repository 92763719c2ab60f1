package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// KeyHandlers handles api key HTTP requests
type KeyHandlers struct {
	keySvc domain.KeyService
}

// NewKeyHandlers creates new key handlers
func NewKeyHandlers(keySvc domain.KeyService) *KeyHandlers {
	return &KeyHandlers{keySvc: keySvc}
}

// GenerateKeyRequest represents a key issuance request
type GenerateKeyRequest struct {
	FirstName   string   `json:"firstName" binding:"required"`
	LastName    string   `json:"lastName" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	AppName     string   `json:"appName" binding:"required"`
	Description string   `json:"description"`
	Expiry      string   `json:"expiry"`
	Scopes      []string `json:"scopes"`
	Prefix      string   `json:"prefix"`
}

// ValidateKeyRequest represents a key validation request
type ValidateKeyRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// GenerateKey handles key issuance
func (h *KeyHandlers) GenerateKey(c *gin.Context) {
	var req GenerateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstName, lastName, email and appName are required"})
		return
	}

	// Scopes are accepted and echoed, not persisted or enforced
	scopes := req.Scopes
	if len(scopes) == 0 {
		scopes = []string{"read"}
	}

	issued, err := h.keySvc.IssueKey(c.Request.Context(), domain.IssueKeyRequest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		AppName:     req.AppName,
		Description: req.Description,
		Expiry:      req.Expiry,
		Scopes:      scopes,
		Prefix:      req.Prefix,
	})
	if err != nil {
		log.Printf("KEY_ISSUE_FAILED: email=%s error=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate api key"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          issued.Key.ID,
		"apiKey":      issued.Key.Key,
		"appName":     req.AppName,
		"description": req.Description,
		"expiry":      req.Expiry,
		"scopes":      scopes,
		"createdAt":   issued.Key.CreatedAt,
		"expiresAt":   issued.Key.ExpiresAt,
		"status":      issued.Status,
		"user": gin.H{
			"id":       issued.Owner.ID,
			"fullName": issued.Owner.FullName(),
			"email":    issued.Owner.Email,
			"status":   issued.Owner.Status,
		},
	})
}

// ValidateKey handles key validation
func (h *KeyHandlers) ValidateKey(c *gin.Context) {
	var req ValidateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "apiKey is required"})
		return
	}

	result, err := h.keySvc.ValidateKey(c.Request.Context(), req.APIKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"valid": false,
				"error": "API key not found",
			})
			return
		}
		log.Printf("KEY_VALIDATE_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate api key"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":     result.Valid,
		"status":    result.Status,
		"id":        result.Key.ID,
		"userId":    result.Key.UserID,
		"apiKey":    result.Key.Key,
		"createdAt": result.Key.CreatedAt,
		"expiresAt": result.Key.ExpiresAt,
	})
}

// KeyHistory handles the per-user credential listing
func (h *KeyHandlers) KeyHistory(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	keys, err := h.keySvc.KeysByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("KEY_HISTORY_FAILED: email=%s error=%v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list api keys"})
		return
	}

	items := make([]gin.H, 0, len(keys))
	for _, k := range keys {
		items = append(items, gin.H{
			"id":        k.Key.ID,
			"apiKey":    k.Key.Key,
			"createdAt": k.Key.CreatedAt,
			"expiresAt": k.Key.ExpiresAt,
			"status":    k.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"email": email,
		"keys":  items,
		"count": len(items),
	})
}
