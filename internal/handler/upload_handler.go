package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anoa.com/clanportal/pkg/storage"
)

var uploadFolders = map[string]bool{
	"avatars": true,
	"banners": true,
}

type UploadHandler struct {
	imageStorage storage.ImageStorage
}

func NewUploadHandler(imageStorage storage.ImageStorage) *UploadHandler {
	return &UploadHandler{imageStorage: imageStorage}
}

// Upload stores an avatar or banner image and returns its URL, for use in
// the registration form or a clan banner.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "image file is required"})
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "avatars"
	}
	if !uploadFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unknown upload folder"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to read image"})
		return
	}
	defer file.Close()

	url, err := h.imageStorage.UploadImage(c.Request.Context(), file, folder, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "image upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
