package api

import (
	"errors"   // Error category checks
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"debt_tracker/internal/auth"
	"debt_tracker/internal/domain"
)

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`    // Valid email required
	Password string `json:"password" binding:"required,min=6"` // Minimum password length
	FullName string `json:"full_name" binding:"required"`      // Display name required
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Valid email required
	Password string `json:"password" binding:"required"`    // Password required
}

// AuthResponse carries an issued access token
type AuthResponse struct {
	AccessToken string `json:"access_token"` // Signed JWT
	TokenType   string `json:"token_type"`   // Always "bearer"
}

// RegisterHandler creates a new account and returns an access token
func RegisterHandler(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		token, err := authSvc.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"email": req.Email,
				"error": err.Error(),
			}).Error("Registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// LoginHandler authenticates a user and returns an access token
func LoginHandler(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		token, err := authSvc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			// Unknown email and wrong password intentionally share a response
			if errors.Is(err, domain.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"email": req.Email,
				"error": err.Error(),
			}).Error("Login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{AccessToken: token, TokenType: "bearer"})
	}
}
