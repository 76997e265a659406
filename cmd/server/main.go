package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/fuelstation/backend/internal/application/identity"
	partnerapp "github.com/fuelstation/backend/internal/application/partner"
	reportapp "github.com/fuelstation/backend/internal/application/report"
	shiftapp "github.com/fuelstation/backend/internal/application/shift"
	stationapp "github.com/fuelstation/backend/internal/application/station"
	"github.com/fuelstation/backend/internal/infrastructure/auth"
	"github.com/fuelstation/backend/internal/infrastructure/config"
	"github.com/fuelstation/backend/internal/infrastructure/logger"
	"github.com/fuelstation/backend/internal/infrastructure/persistence"
	"github.com/fuelstation/backend/internal/infrastructure/printing"
	"github.com/fuelstation/backend/internal/infrastructure/storage"
	"github.com/fuelstation/backend/internal/interfaces/http/handler"
	"github.com/fuelstation/backend/internal/interfaces/http/middleware"
	"github.com/fuelstation/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			Fuel Station Backend API
//	@version		1.0
//	@description	Multi-tenant fuel station management API covering staff shifts, tank stock, credit customers and reporting.

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting fuel station backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	shiftRepo := persistence.NewGormShiftRepository(db.DB)
	pumpRepo := persistence.NewGormPumpRepository(db.DB)
	fuelSettingRepo := persistence.NewGormFuelSettingRepository(db.DB)
	tankUnloadRepo := persistence.NewGormTankUnloadRepository(db.DB)
	dailyReadingRepo := persistence.NewGormDailyReadingRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	bookletRepo := persistence.NewGormIndentBookletRepository(db.DB)
	indentRepo := persistence.NewGormIndentRepository(db.DB)
	ledgerRepo := persistence.NewGormCreditTransactionRepository(db.DB)

	// Transaction scopes for multi-repository operations
	shiftTxScope := persistence.NewGormShiftTransactionScope(db.DB)
	stationTxScope := persistence.NewGormStationTransactionScope(db.DB)
	partnerTxScope := persistence.NewGormPartnerTransactionScope(db.DB)

	// Token blacklist backed by Redis, with in-memory fallback for
	// single-instance deployments without Redis
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Host != "" {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
			blacklist = auth.NewInMemoryTokenBlacklist()
		} else {
			blacklist = redisBlacklist
			log.Info("Redis token blacklist connected",
				zap.String("host", cfg.Redis.Host),
				zap.Int("port", cfg.Redis.Port),
			)
		}
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
	}

	// Object storage for station logos (optional)
	var objectStorage identityapp.ObjectStorageService
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		bucketCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(bucketCtx); err != nil {
			log.Warn("Failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
		objectStorage = s3Storage
		log.Info("Object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	}

	// Initialize application services
	authService := identityapp.NewAuthService(tenantRepo, userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo)
	tenantService := identityapp.NewTenantService(tenantRepo, userRepo, objectStorage, log)
	shiftService := shiftapp.NewShiftService(shiftTxScope, shiftRepo, pumpRepo, log)
	fuelService := stationapp.NewFuelService(stationTxScope, fuelSettingRepo, tankUnloadRepo, log)
	pumpService := stationapp.NewPumpService(pumpRepo)
	dailyReadingService := stationapp.NewDailyReadingService(stationTxScope, dailyReadingRepo, log)
	customerService := partnerapp.NewCustomerService(partnerTxScope, customerRepo, ledgerRepo, log)
	vehicleService := partnerapp.NewVehicleService(vehicleRepo, customerRepo)
	bookletService := partnerapp.NewBookletService(bookletRepo, customerRepo, log)
	indentService := partnerapp.NewIndentService(partnerTxScope, indentRepo, log)
	reportService := reportapp.NewReportService(
		shiftRepo, fuelSettingRepo, tankUnloadRepo, dailyReadingRepo,
		customerRepo, ledgerRepo, userRepo, log,
	)

	// PDF rendering via headless Chrome (optional)
	templateEngine, err := printing.NewTemplateEngine()
	if err != nil {
		log.Fatal("Failed to initialize template engine", zap.Error(err))
	}
	var pdfRenderer printing.PDFRenderer
	if cfg.Printing.Enabled {
		chromeRenderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
			DefaultTimeout: cfg.Printing.RenderTimeout,
			ChromePath:     cfg.Printing.ChromePath,
			PaperWidth:     cfg.Printing.PaperWidth,
			PaperHeight:    cfg.Printing.PaperHeight,
			Logger:         log,
		})
		if err != nil {
			log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
		}
		defer func() {
			if err := chromeRenderer.Close(); err != nil {
				log.Error("Error closing PDF renderer", zap.Error(err))
			}
		}()
		pdfRenderer = chromeRenderer
		log.Info("PDF rendering enabled")
	}
	documentService := reportapp.NewDocumentService(reportService, tenantRepo, templateEngine, pdfRenderer, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	shiftHandler := handler.NewShiftHandler(shiftService)
	fuelHandler := handler.NewFuelHandler(fuelService)
	pumpHandler := handler.NewPumpHandler(pumpService)
	dailyReadingHandler := handler.NewDailyReadingHandler(dailyReadingService)
	customerHandler := handler.NewCustomerHandler(customerService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	bookletHandler := handler.NewBookletHandler(bookletService)
	indentHandler := handler.NewIndentHandler(indentService)
	reportHandler := handler.NewReportHandler(reportService, documentService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	middleware.SetupValidator()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoints (outside API versioning)
	engine.GET("/health", healthHandler(db))
	engine.GET("/ready", healthHandler(db))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/station/register",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	manager := middleware.RequireRole("owner", "manager")
	owner := middleware.RequireRole("owner")

	// Auth routes
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		loginLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.POST("/login", middleware.RateLimitByKey(loginLimiter, func(c *gin.Context) string {
			return c.ClientIP()
		}), authHandler.Login)
	} else {
		authRoutes.POST("/login", authHandler.Login)
	}
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.POST("/change-password", authHandler.ChangePassword)

	// Station routes (the authenticated tenant's own station)
	stationRoutes := router.NewDomainGroup("station", "/station")
	stationRoutes.POST("/register", tenantHandler.Register)
	stationRoutes.GET("", tenantHandler.GetCurrent)
	stationRoutes.PUT("", manager, tenantHandler.Update)
	stationRoutes.PUT("/config", manager, tenantHandler.UpdateConfig)
	stationRoutes.POST("/logo/prepare", manager, tenantHandler.PrepareLogoUpload)
	stationRoutes.POST("/logo/confirm", manager, tenantHandler.ConfirmLogoUpload)

	// Station administration routes
	stationsRoutes := router.NewDomainGroup("stations", "/stations")
	stationsRoutes.Use(owner)
	stationsRoutes.GET("", tenantHandler.List)
	stationsRoutes.POST("/:id/activate", tenantHandler.Activate)
	stationsRoutes.POST("/:id/suspend", tenantHandler.Suspend)
	stationsRoutes.POST("/:id/deactivate", tenantHandler.Deactivate)

	// Staff management routes
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.Use(manager)
	userRoutes.POST("", userHandler.Create)
	userRoutes.GET("", userHandler.List)
	userRoutes.GET("/:id", userHandler.Get)
	userRoutes.PUT("/:id", userHandler.Update)
	userRoutes.POST("/:id/activate", userHandler.Activate)
	userRoutes.POST("/:id/deactivate", userHandler.Deactivate)
	userRoutes.POST("/:id/unlock", userHandler.Unlock)
	userRoutes.POST("/:id/reset-password", userHandler.ResetPassword)
	userRoutes.DELETE("/:id", userHandler.Delete)

	// Shift routes
	shiftRoutes := router.NewDomainGroup("shifts", "/shifts")
	shiftRoutes.POST("", shiftHandler.Start)
	shiftRoutes.GET("", shiftHandler.List)
	shiftRoutes.GET("/active", shiftHandler.Active)
	shiftRoutes.GET("/handover", shiftHandler.Handover)
	shiftRoutes.GET("/:id", shiftHandler.Get)
	shiftRoutes.POST("/:id/end", shiftHandler.End)
	shiftRoutes.DELETE("/:id", manager, shiftHandler.Delete)

	// Fuel product routes
	fuelRoutes := router.NewDomainGroup("fuels", "/fuels")
	fuelRoutes.POST("", manager, fuelHandler.CreateSetting)
	fuelRoutes.GET("", fuelHandler.ListSettings)
	fuelRoutes.GET("/low-stock", fuelHandler.LowStockAlerts)
	fuelRoutes.GET("/:fuel_type", fuelHandler.GetSetting)
	fuelRoutes.PUT("/:fuel_type/price", manager, fuelHandler.UpdatePrice)
	fuelRoutes.PUT("/:fuel_type/tank", manager, fuelHandler.UpdateTank)

	// Tanker delivery routes
	unloadRoutes := router.NewDomainGroup("unloads", "/unloads")
	unloadRoutes.POST("", fuelHandler.RecordUnload)
	unloadRoutes.GET("", fuelHandler.ListUnloads)
	unloadRoutes.GET("/:id", fuelHandler.GetUnload)

	// Pump routes
	pumpRoutes := router.NewDomainGroup("pumps", "/pumps")
	pumpRoutes.POST("", manager, pumpHandler.Create)
	pumpRoutes.GET("", pumpHandler.List)
	pumpRoutes.GET("/operational", pumpHandler.ListOperational)
	pumpRoutes.GET("/:id", pumpHandler.Get)
	pumpRoutes.POST("/:id/nozzles", manager, pumpHandler.AddNozzle)
	pumpRoutes.DELETE("/:id/nozzles/:nozzle_id", manager, pumpHandler.RemoveNozzle)
	pumpRoutes.PUT("/:id/status", manager, pumpHandler.UpdateStatus)
	pumpRoutes.DELETE("/:id", manager, pumpHandler.Delete)

	// Daily stock record routes
	dailyReadingRoutes := router.NewDomainGroup("daily-readings", "/daily-readings")
	dailyReadingRoutes.POST("", dailyReadingHandler.Record)
	dailyReadingRoutes.GET("", dailyReadingHandler.List)
	dailyReadingRoutes.GET("/:id", dailyReadingHandler.Get)
	dailyReadingRoutes.DELETE("/:id", manager, dailyReadingHandler.Delete)

	// Credit customer routes
	customerRoutes := router.NewDomainGroup("customers", "/customers")
	customerRoutes.POST("", manager, customerHandler.Create)
	customerRoutes.GET("", customerHandler.List)
	customerRoutes.GET("/:id", customerHandler.Get)
	customerRoutes.PUT("/:id", manager, customerHandler.Update)
	customerRoutes.PUT("/:id/credit-limit", manager, customerHandler.SetCreditLimit)
	customerRoutes.POST("/:id/payments", customerHandler.RecordPayment)
	customerRoutes.POST("/:id/adjustments", manager, customerHandler.RecordAdjustment)
	customerRoutes.GET("/:id/ledger", customerHandler.GetLedger)
	customerRoutes.GET("/:id/vehicles", vehicleHandler.List)
	customerRoutes.GET("/:id/booklets", bookletHandler.List)
	customerRoutes.POST("/:id/activate", manager, customerHandler.Activate)
	customerRoutes.POST("/:id/deactivate", manager, customerHandler.Deactivate)
	customerRoutes.DELETE("/:id", manager, customerHandler.Delete)

	// Vehicle routes
	vehicleRoutes := router.NewDomainGroup("vehicles", "/vehicles")
	vehicleRoutes.POST("", vehicleHandler.Create)
	vehicleRoutes.GET("/:id", vehicleHandler.Get)
	vehicleRoutes.DELETE("/:id", manager, vehicleHandler.Delete)

	// Indent booklet routes
	bookletRoutes := router.NewDomainGroup("booklets", "/booklets")
	bookletRoutes.POST("", manager, bookletHandler.Issue)
	bookletRoutes.GET("/:id", bookletHandler.Get)
	bookletRoutes.POST("/:id/cancel", manager, bookletHandler.Cancel)

	// Credit fueling routes
	indentRoutes := router.NewDomainGroup("indents", "/indents")
	indentRoutes.POST("", indentHandler.Record)
	indentRoutes.GET("", indentHandler.List)
	indentRoutes.GET("/:id", indentHandler.Get)

	// Report routes
	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.Use(manager)
	reportRoutes.GET("/sales", reportHandler.SalesReport)
	reportRoutes.GET("/sales/pdf", reportHandler.SalesReportPDF)
	reportRoutes.GET("/shifts", reportHandler.ShiftSummary)
	reportRoutes.GET("/customers/:customer_id/statement", reportHandler.Statement)
	reportRoutes.GET("/customers/:customer_id/statement/pdf", reportHandler.StatementPDF)

	// Register all domain groups
	r.Register(authRoutes).
		Register(stationRoutes).
		Register(stationsRoutes).
		Register(userRoutes).
		Register(shiftRoutes).
		Register(fuelRoutes).
		Register(unloadRoutes).
		Register(pumpRoutes).
		Register(dailyReadingRoutes).
		Register(customerRoutes).
		Register(vehicleRoutes).
		Register(bookletRoutes).
		Register(indentRoutes).
		Register(reportRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
