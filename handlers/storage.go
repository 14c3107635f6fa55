package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"roomify/utils"

	"github.com/gin-gonic/gin"
)

// allowedFolders defines the permitted upload destinations.
var allowedFolders = map[string]bool{
	"hotels": true,
	"rooms":  true,
}

// UploadImageHandler uploads a hotel or room image and returns its delivery
// URL. Admin only.
func UploadImageHandler(store utils.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
			return
		}
		folder := c.DefaultPostForm("folder", "hotels")
		if !allowedFolders[folder] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder; allowed values are 'hotels' and 'rooms'"})
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
			return
		}

		tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
		if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "details": err.Error()})
			return
		}
		defer os.Remove(tempFilePath)

		url, err := store.UploadImage(c.Request.Context(), tempFilePath, folder)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
