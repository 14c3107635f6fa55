package handlers

import (
	"net/http"

	"roomify/services/user"

	"github.com/gin-gonic/gin"
)

// RegisterHandler creates a new account and returns a session token.
func RegisterHandler(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		result, err := users.Register(in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// LoginHandler verifies credentials and returns a session token.
func LoginHandler(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		result, err := users.Authenticate(in.Email, in.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
