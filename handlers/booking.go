package handlers

import (
	"fmt"
	"net/http"

	"superlaw/middleware"
	"superlaw/models"
	"superlaw/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReserveSlotHandler books a consultation into an open slot.
func (h *HandlerBundle) ReserveSlotHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ReserveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reservation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, ok := c.MustGet(middleware.ContextUser).(*models.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	clientName := fmt.Sprintf("%s %s", user.FirstName, user.LastName)

	consultation, err := h.Booking.ReserveSlot(c.Request.Context(), user.ID, clientName, req)
	if err != nil {
		if models.IsScheduleError(err) {
			utils.ScheduleError(c, err)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, consultation)
}

// ListOwnConsultationsHandler returns the caller's booked consultations.
func (h *HandlerBundle) ListOwnConsultationsHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	consultations, err := h.Booking.ListOwn(c.Request.Context(), userID)
	if err != nil {
		getLogger(c).Error("Failed to list consultations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list consultations"})
		return
	}
	c.JSON(http.StatusOK, consultations)
}

// ListProfileConsultationsHandler returns the consultations booked into the
// lawyer's own profile.
func (h *HandlerBundle) ListProfileConsultationsHandler(c *gin.Context) {
	profileID, ok := h.ownProfileID(c)
	if !ok {
		return
	}
	consultations, err := h.Booking.ListForProfile(c.Request.Context(), profileID)
	if err != nil {
		getLogger(c).Error("Failed to list consultations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list consultations"})
		return
	}
	c.JSON(http.StatusOK, consultations)
}
