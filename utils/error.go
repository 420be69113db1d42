package utils

import (
	"errors"
	"net/http"

	"superlaw/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// ScheduleError maps the scheduling engine's error kinds to an HTTP status
// and writes the JSON body. Unknown errors fall through as 500.
func ScheduleError(c *gin.Context, err error) {
	var (
		invalidRange  models.InvalidRangeError
		overlap       models.OverlapError
		outOfWindow   models.OutOfWindowError
		slotLocked    models.SlotLockedError
		alreadyBooked models.AlreadyBookedError
	)
	switch {
	case errors.As(err, &invalidRange):
		JSONError(c, http.StatusBadRequest, "Invalid time range", err.Error())
	case errors.As(err, &outOfWindow):
		JSONError(c, http.StatusBadRequest, "Date outside booking window", err.Error())
	case errors.As(err, &overlap):
		JSONError(c, http.StatusConflict, "Overlapping time slot", err.Error())
	case errors.As(err, &slotLocked):
		JSONError(c, http.StatusConflict, "Slot has a booked meeting", err.Error())
	case errors.As(err, &alreadyBooked):
		JSONError(c, http.StatusConflict, "Slot already booked", err.Error())
	default:
		JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}
