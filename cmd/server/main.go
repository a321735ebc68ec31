package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analyticsapp "github.com/greenhub/backend/internal/application/analytics"
	catalogapp "github.com/greenhub/backend/internal/application/catalog"
	identityapp "github.com/greenhub/backend/internal/application/identity"
	marketingapp "github.com/greenhub/backend/internal/application/marketing"
	notificationapp "github.com/greenhub/backend/internal/application/notification"
	orderapp "github.com/greenhub/backend/internal/application/order"
	vendorapp "github.com/greenhub/backend/internal/application/vendor"
	"github.com/greenhub/backend/internal/infrastructure/auth"
	"github.com/greenhub/backend/internal/infrastructure/config"
	"github.com/greenhub/backend/internal/infrastructure/email"
	"github.com/greenhub/backend/internal/infrastructure/event"
	"github.com/greenhub/backend/internal/infrastructure/identityprovider"
	"github.com/greenhub/backend/internal/infrastructure/logger"
	"github.com/greenhub/backend/internal/infrastructure/persistence"
	"github.com/greenhub/backend/internal/infrastructure/storage"
	"github.com/greenhub/backend/internal/interfaces/http/handler"
	"github.com/greenhub/backend/internal/interfaces/http/middleware"
	"github.com/greenhub/backend/internal/interfaces/http/router"
)

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
		TimeFormat: cfg.Log.TimeFormat,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting GreenHub Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
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
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	notifRepo := persistence.NewGormNotificationRepository(db.DB)
	adminNotifRepo := persistence.NewGormAdminNotificationRepository(db.DB)
	bannerRepo := persistence.NewGormBannerRepository(db.DB)
	offerRepo := persistence.NewGormOfferRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Initialize infrastructure adapters
	store, err := newObjectStorage(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	var sender vendorapp.EmailSender
	if cfg.Email.Enabled {
		sesSender, err := email.NewSESSender(context.Background(), &cfg.Email, log)
		if err != nil {
			log.Fatal("Failed to initialize SES sender", zap.Error(err))
		}
		sender = sesSender
	} else {
		sender = email.NewNopSender(log)
	}

	idpClient := identityprovider.NewClient(&cfg.IdentityProvider, log)
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	// Vendor suspension -> listings off the storefront
	vendorSuspendedHandler := catalogapp.NewVendorSuspendedHandler(productRepo, log)
	eventBus.Subscribe(vendorSuspendedHandler)

	log.Info("Event handlers registered",
		zap.Strings("vendor_suspended_events", vendorSuspendedHandler.EventTypes()),
	)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize application services
	notificationService := notificationapp.NewService(notifRepo, adminNotifRepo, vendorRepo, db, log)
	registrationService := vendorapp.NewRegistrationService(vendorRepo, adminNotifRepo, store, db, eventBus, log)
	lifecycleService := vendorapp.NewLifecycleService(vendorRepo, notifRepo, idpClient, sender, db, eventBus, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, adminNotifRepo, store, db, eventBus, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, notificationService, db, log)
	orderService := orderapp.NewService(orderRepo, productRepo, vendorRepo, notifRepo, adminNotifRepo, db, eventBus, log)
	marketingService := marketingapp.NewService(bannerRepo, offerRepo, notificationService, db, log)
	analyticsService := analyticsapp.NewService(vendorRepo, productRepo, orderRepo, notifRepo, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)

	// Initialize HTTP handlers
	vendorHandler := handler.NewVendorHandler(registrationService, lifecycleService)
	productHandler := handler.NewProductHandler(productService, lifecycleService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	orderHandler := handler.NewOrderHandler(orderService, lifecycleService)
	notificationHandler := handler.NewNotificationHandler(notificationService, lifecycleService)
	marketingHandler := handler.NewMarketingHandler(marketingService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	authHandler := handler.NewAuthHandler(authService)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodyBytes))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtAuth := middleware.JWTAuth(jwtService, log)

	// Auth (signup and login are public, /me requires a token)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/signup", authHandler.Signup)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.GET("/me", jwtAuth, authHandler.GetCurrentUser)

	// Vendor applications and the public supplier directory
	vendorRoutes := router.NewDomainGroup("vendors", "/vendors")
	vendorRoutes.POST("/register", vendorHandler.Register)
	vendorRoutes.GET("", vendorHandler.ListApproved)

	// Public storefront catalog
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/products", productHandler.ListPublic)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.GET("/products/slug/:slug", productHandler.GetBySlug)
	catalogRoutes.GET("/categories", categoryHandler.List)
	catalogRoutes.GET("/categories/:id", categoryHandler.GetByID)
	catalogRoutes.GET("/categories/:id/children", categoryHandler.GetChildren)

	// Public promotions
	marketingRoutes := router.NewDomainGroup("marketing", "/marketing")
	marketingRoutes.GET("/banners", marketingHandler.ListActiveBanners)
	marketingRoutes.GET("/offers", marketingHandler.ListActiveOffers)
	marketingRoutes.GET("/offers/redeem/:code", marketingHandler.RedeemOffer)

	// Public checkout
	orderRoutes := router.NewDomainGroup("orders", "/orders")
	orderRoutes.POST("", orderHandler.Place)

	// Vendor portal (approved vendors only)
	vendorPortalRoutes := router.NewDomainGroup("vendor-portal", "/vendor")
	vendorPortalRoutes.Use(jwtAuth, middleware.RequireVendor())
	vendorPortalRoutes.GET("/me", vendorHandler.Me)
	vendorPortalRoutes.PUT("/me/contact", vendorHandler.UpdateMyContact)
	vendorPortalRoutes.GET("/products", productHandler.ListMine)
	vendorPortalRoutes.POST("/products", productHandler.Create)
	vendorPortalRoutes.PUT("/products/:id", productHandler.Update)
	vendorPortalRoutes.POST("/products/:id/image", productHandler.UploadImage)
	vendorPortalRoutes.POST("/products/:id/submit", productHandler.SubmitForReview)
	vendorPortalRoutes.PATCH("/products/:id/active", productHandler.SetActive)
	vendorPortalRoutes.DELETE("/products/:id", productHandler.Delete)
	vendorPortalRoutes.GET("/orders", orderHandler.ListMine)
	vendorPortalRoutes.GET("/notifications", notificationHandler.ListMine)
	vendorPortalRoutes.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	vendorPortalRoutes.POST("/notifications/:id/read", notificationHandler.MarkRead)
	vendorPortalRoutes.POST("/notifications/read-all", notificationHandler.MarkAllRead)

	// Admin console
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(jwtAuth, middleware.RequireAdmin())
	adminRoutes.GET("/dashboard", analyticsHandler.Dashboard)

	adminRoutes.GET("/vendors", vendorHandler.List)
	adminRoutes.GET("/vendors/counts", vendorHandler.Counts)
	adminRoutes.GET("/vendors/:id", vendorHandler.GetByID)
	adminRoutes.POST("/vendors/:id/approve", vendorHandler.Approve)
	adminRoutes.POST("/vendors/:id/reject", vendorHandler.Reject)
	adminRoutes.POST("/vendors/:id/suspend", vendorHandler.Suspend)
	adminRoutes.POST("/vendors/:id/reactivate", vendorHandler.Reactivate)
	adminRoutes.POST("/vendors/:id/invite-best-seller", notificationHandler.InviteBestSeller)
	adminRoutes.DELETE("/vendors/:id", vendorHandler.Delete)

	adminRoutes.GET("/products", productHandler.ListAll)
	adminRoutes.POST("/products/:id/publish", productHandler.Publish)
	adminRoutes.POST("/products/:id/reject", productHandler.RejectListing)

	adminRoutes.POST("/categories", categoryHandler.Create)
	adminRoutes.PUT("/categories/:id", categoryHandler.Update)
	adminRoutes.DELETE("/categories/:id", categoryHandler.Delete)

	adminRoutes.GET("/orders", orderHandler.ListAll)
	adminRoutes.GET("/orders/:id", orderHandler.GetByID)
	adminRoutes.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	adminRoutes.POST("/notifications", notificationHandler.Send)
	adminRoutes.POST("/notifications/broadcast", notificationHandler.Broadcast)
	adminRoutes.GET("/notifications", notificationHandler.ListAdmin)
	adminRoutes.GET("/notifications/history", notificationHandler.History)
	adminRoutes.GET("/notifications/unread-count", notificationHandler.AdminUnreadCount)
	adminRoutes.POST("/notifications/read-all", notificationHandler.MarkAllAdminRead)

	adminRoutes.POST("/banners", marketingHandler.CreateBanner)
	adminRoutes.GET("/banners", marketingHandler.ListAllBanners)
	adminRoutes.POST("/banners/:id/deactivate", marketingHandler.DeactivateBanner)
	adminRoutes.DELETE("/banners/:id", marketingHandler.DeleteBanner)
	adminRoutes.POST("/offers", marketingHandler.CreateOffer)
	adminRoutes.GET("/offers", marketingHandler.ListAllOffers)
	adminRoutes.POST("/offers/:id/deactivate", marketingHandler.DeactivateOffer)
	adminRoutes.DELETE("/offers/:id", marketingHandler.DeleteOffer)

	r.Register(authRoutes).
		Register(vendorRoutes).
		Register(catalogRoutes).
		Register(marketingRoutes).
		Register(orderRoutes).
		Register(vendorPortalRoutes).
		Register(adminRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	lifecycleService.WaitForEmails()

	log.Info("Server exited gracefully")
}

// objectStorage is the method set shared by the vendor document store and
// the product image store
type objectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	PresignDownload(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}

func newObjectStorage(cfg *config.Config, log *zap.Logger) (objectStorage, error) {
	if cfg.Storage.Provider == "s3" {
		return storage.NewS3ObjectStorage(&cfg.Storage, log)
	}
	return storage.NewLocalObjectStorage(cfg.Storage.LocalDir, cfg.Storage.BaseURL)
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
