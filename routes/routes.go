package routes

import (
	"net/http"
	"time"

	"superlaw/handlers"
	"superlaw/middleware"
	"superlaw/models"
	"superlaw/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, confirmation and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/register-lawyer", hb.RegisterLawyerHandler)
		api.GET("/confirm-email", hb.ConfirmEmailHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterProfileRoutes registers the public directory and the lawyer-side
// profile editor.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		// Public endpoints: search and the booking page.
		api.POST("/search", hb.SearchProfilesHandler)
		api.GET("/id/:id", hb.GetProfileHandler)

		// Lawyer-only profile management.
		own := api.Group("/own")
		own.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleLawyer))
		own.GET("", hb.GetOwnProfileHandler)
		own.PUT("", hb.EditProfileHandler)
		own.POST("/image", hb.UploadProfileImageHandler)
	}
}

// RegisterScheduleRoutes registers the availability editor endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleLawyer))
		api.GET("/days", hb.ListScheduleDaysHandler)
		api.GET("/days/:date", hb.GetScheduleDayHandler)
		api.PUT("/days", hb.SaveScheduleDayHandler)
		api.GET("/consultations", hb.ListProfileConsultationsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for slot reservation.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/reserve", hb.ReserveSlotHandler)
		api.GET("/consultations", hb.ListOwnConsultationsHandler)
	}
}

// RegisterSimpleDataRoutes registers the public lookup-data endpoints.
func RegisterSimpleDataRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/simple-data")
	{
		api.GET("/categories", hb.GetCategoriesHandler)
		api.GET("/regions", hb.GetRegionsHandler)
		api.GET("/cities", hb.GetCitiesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSimpleDataRoutes(r, hb)
	RegisterHealthRoute(r)
}
