package handlers

import (
	"net/http"

	"roomify/middleware"
	"roomify/services/booking"
	"roomify/services/user"

	"github.com/gin-gonic/gin"
)

func callerActor(c *gin.Context) booking.Actor {
	return booking.Actor{UserID: middleware.CallerID(c), Admin: middleware.CallerIsAdmin(c)}
}

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.GetUser(middleware.CallerID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}

// UpdateProfileHandler applies the authenticated user's profile edits.
func UpdateProfileHandler(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		u, err := users.UpdateUser(middleware.CallerID(c), in, callerActor(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}

// ListUsersHandler returns all accounts. Admin only.
func ListUsersHandler(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.ListUsers()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": list})
	}
}

// GetUserHandler returns a single account by ID. Admin only.
func GetUserHandler(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.GetUser(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}

// UpdateUserHandler applies edits to any account. Admin only.
func UpdateUserHandler(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		u, err := users.UpdateUser(c.Param("id"), in, callerActor(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}

// DeleteUserHandler removes an account. Admin only.
func DeleteUserHandler(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := users.DeleteUser(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
	}
}
