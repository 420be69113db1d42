package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"superlaw/middleware"
	"superlaw/models"
	"superlaw/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetOwnProfileHandler returns the lawyer's own profile.
func (h *HandlerBundle) GetOwnProfileHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	profile, err := h.Profiles.GetOwnProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfileHandler returns a profile by id, schedule included, for the
// public booking page.
func (h *HandlerBundle) GetProfileHandler(c *gin.Context) {
	profile, err := h.Profiles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// EditProfileHandler applies the profile editor payload.
func (h *HandlerBundle) EditProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString(middleware.ContextUserID)

	var req models.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid profile payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.Profiles.EditProfile(c.Request.Context(), userID, req)
	if err != nil {
		if models.IsScheduleError(err) {
			utils.ScheduleError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadProfileImageHandler accepts a multipart image and stores it.
func (h *HandlerBundle) UploadProfileImageHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString(middleware.ContextUserID)

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	// Stage the upload in a temp file; the storage backend reads from disk.
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to stage uploaded image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Profiles.UploadProfileImage(c.Request.Context(), userID, tmpPath)
	if err != nil {
		logger.Error("Profile image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imgPath": url})
}

// SearchProfilesHandler lists completed profiles matching the filters.
func (h *HandlerBundle) SearchProfilesHandler(c *gin.Context) {
	var req models.SearchInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	views, err := h.Profiles.Search(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Error("Profile search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, views)
}
