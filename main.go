package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"superlaw/config"
	"superlaw/cron"
	"superlaw/database"
	consultationRepoPkg "superlaw/database/repository/consultation"
	profileRepoPkg "superlaw/database/repository/profile"
	simpledataRepoPkg "superlaw/database/repository/simpledata"
	userRepoPkg "superlaw/database/repository/user"
	"superlaw/handlers"
	"superlaw/middleware"
	"superlaw/routes"
	"superlaw/services/auth"
	"superlaw/services/booking"
	"superlaw/services/profile"
	"superlaw/services/schedule"
	"superlaw/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profRepo := profileRepoPkg.NewMongoProfileRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()
	simpleRepo := simpledataRepoPkg.NewMongoSimpleDataRepo()
	consRepo := consultationRepoPkg.NewMongoConsultationRepo()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := simpleRepo.Seed(startupCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed lookup data: %v", err)
	}
	cancelStartup()

	// services.
	validator := schedule.NewValidator(config.AppConfig.BookingWindowMonths)
	locks := schedule.NewProfileLocks()

	editorService := &schedule.DefaultEditorService{
		Repo:      profRepo,
		Validator: validator,
		Locks:     locks,
	}

	authService := &auth.DefaultAuthService{
		Users:      usrRepo,
		Profiles:   profRepo,
		SimpleData: simpleRepo,
	}

	profileService := &profile.DefaultProfileService{
		Repo:    profRepo,
		Editor:  editorService,
		Storage: cloudinaryStorageService,
	}

	reminderScheduler := cron.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Profiles:      profRepo,
		Consultations: consRepo,
		Validator:     validator,
		Locks:         locks,
		Reminders:     reminderScheduler,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   usrRepo,
		Auth:       authService,
		Profiles:   profileService,
		Editor:     editorService,
		Booking:    bookingService,
		SimpleData: simpleRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitoring.
	cron.InitReminderWorker()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetConfirmCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
