package routes

import (
	"fmt"

	"coffee-shop-backend/internal/api/handlers"
	"coffee-shop-backend/internal/api/middleware"
	"coffee-shop-backend/internal/auth"
	"coffee-shop-backend/internal/config"
	"coffee-shop-backend/internal/database/models"
	"coffee-shop-backend/internal/payment"
	"coffee-shop-backend/internal/repository"
	"coffee-shop-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoints
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	patternRepo := repository.NewRecurrencePatternRepository(db)
	workScheduleRepo := repository.NewWorkScheduleRepository(db)
	employeeShiftRepo := repository.NewEmployeeShiftRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	transactor := repository.NewTransactor(db)

	scheduleOpts := service.ScheduleOptions{
		Location:          cfg.Location(),
		MaxGenerationDays: cfg.MaxGenerationDays,
	}

	// Initialize services
	workScheduleService := service.NewWorkScheduleService(workScheduleRepo, employeeShiftRepo, patternRepo, transactor, validator, scheduleOpts)
	employeeShiftService := service.NewEmployeeShiftService(employeeShiftRepo, scheduleOpts)
	patternService := service.NewRecurrencePatternService(patternRepo, workScheduleRepo, validator)
	shiftService := service.NewShiftService(shiftRepo, employeeShiftRepo, validator)
	reportService := service.NewReportService(paymentRepo, cfg.Location())
	paymentService := service.NewPaymentService(paymentRepo, transactor, payment.NewSigner(cfg.VNPayHashSecret), nil)

	// Initialize auth
	authConfig, err := auth.NewAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	authService, err := auth.NewAuthService(authConfig, userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)
	adminOnly := authMiddleware.RequireRole(models.RoleAdmin)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	workScheduleHandler := handlers.NewWorkScheduleHandler(workScheduleService)
	employeeShiftHandler := handlers.NewEmployeeShiftHandler(employeeShiftService)
	patternHandler := handlers.NewRecurrencePatternHandler(patternService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	reportHandler := handlers.NewReportHandler(reportService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	v1 := router.Group("/api/v1")

	// Payment gateway callbacks are authenticated by checksum, not by token
	v1.GET("/payments/vnpay/ipn", paymentHandler.VNPayIPN)

	secured := v1.Group("")
	secured.Use(authMiddleware.RequireAuth())
	{
		// Work schedule routes
		workSchedules := secured.Group("/work-schedules", adminOnly)
		{
			workSchedules.GET("", workScheduleHandler.ListWorkSchedules)
			workSchedules.POST("/generate-from-pattern", workScheduleHandler.GenerateFromPattern)
			workSchedules.GET("/:id", workScheduleHandler.GetWorkSchedule)
			workSchedules.GET("/:id/shifts", workScheduleHandler.GetWorkScheduleShifts)
			workSchedules.DELETE("/:id", workScheduleHandler.DeleteWorkSchedule)
		}

		// Occurrence listing is open to every authenticated user
		secured.GET("/employee-shifts", employeeShiftHandler.ListEmployeeShifts)

		// Recurrence pattern routes
		patterns := secured.Group("/recurrence-patterns", adminOnly)
		{
			patterns.GET("", patternHandler.ListRecurrencePatterns)
			patterns.POST("", patternHandler.CreateRecurrencePattern)
			patterns.GET("/:id", patternHandler.GetRecurrencePattern)
			patterns.PUT("/:id", patternHandler.UpdateRecurrencePattern)
			patterns.DELETE("/:id", patternHandler.DeleteRecurrencePattern)
		}

		// Shift routes; reads are open to staff
		shifts := secured.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.POST("", adminOnly, shiftHandler.CreateShift)
			shifts.PUT("/:id", adminOnly, shiftHandler.UpdateShift)
			shifts.DELETE("/:id", adminOnly, shiftHandler.DeleteShift)
		}

		// Report routes
		reports := secured.Group("/admin/reports", adminOnly)
		{
			reports.GET("", reportHandler.GetRevenue)
			reports.GET("/export", reportHandler.ExportRevenue)
		}
	}

	return router, nil
}
