package handlers

import (
	"net/http"

	"superlaw/middleware"
	"superlaw/models"
	"superlaw/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetScheduleDayHandler returns one day of the lawyer's availability, empty
// when nothing is stored for the date yet.
func (h *HandlerBundle) GetScheduleDayHandler(c *gin.Context) {
	profileID, ok := h.ownProfileID(c)
	if !ok {
		return
	}

	day, err := h.Editor.GetDay(c.Request.Context(), profileID, c.Param("date"))
	if err != nil {
		utils.ScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// SaveScheduleDayHandler replaces the stored day with the submitted one.
// Submitting a day with no slots clears the date.
func (h *HandlerBundle) SaveScheduleDayHandler(c *gin.Context) {
	logger := getLogger(c)
	profileID, ok := h.ownProfileID(c)
	if !ok {
		return
	}

	var req models.SaveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid schedule day payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	day, err := h.Editor.SaveDay(c.Request.Context(), profileID, req.Day)
	if err != nil {
		utils.ScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// ListScheduleDaysHandler returns the full calendar, ordered by date.
func (h *HandlerBundle) ListScheduleDaysHandler(c *gin.Context) {
	profileID, ok := h.ownProfileID(c)
	if !ok {
		return
	}

	days, err := h.Editor.ListDays(c.Request.Context(), profileID)
	if err != nil {
		utils.ScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// ownProfileID resolves the authenticated lawyer's profile id.
func (h *HandlerBundle) ownProfileID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.ContextUserID)
	profile, err := h.Profiles.GetOwnProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return "", false
	}
	return profile.ID, true
}
