package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pijat_jogja/internal/config"
	"pijat_jogja/internal/handler"
	"pijat_jogja/internal/middleware"
	"pijat_jogja/internal/model"
	"pijat_jogja/internal/notify"
	"pijat_jogja/internal/repository"
	"pijat_jogja/internal/service"
	"pijat_jogja/internal/syncstore"
	"pijat_jogja/internal/utils"
	"pijat_jogja/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto-migrate database")
	}

	// --- Change signals ---
	redisClient, err := config.InitRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to redis")
	}
	localBus := notify.NewLocalBus()
	var notifier notify.Notifier = localBus
	if redisClient != nil {
		defer redisClient.Close()
		redisBus := notify.NewRedisBus(redisClient, localBus)
		go redisBus.Run(ctx)
		notifier = redisBus
	}

	// Tabs hear about settings and footer only after the stores have reloaded.
	// Pricing is read straight from the database, so its signal goes out as is.
	views := notify.NewLocalBus()
	hub := notify.NewHub()
	go hub.Run(ctx)
	go hub.Forward(ctx, views, notify.TopicAll)
	go hub.Forward(ctx, notifier, notify.TopicPricingChanged)

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)

	// --- Initialize Repositories ---
	settingsRepo := repository.NewSettingsRepository(dbPool)
	footerRepo := repository.NewFooterRepository(dbPool)
	pricingRepo := repository.NewPricingRepository(dbPool)
	authRepo := repository.NewAuthRepository(dbPool)
	adminRepo := repository.NewAdminRepository(dbPool)

	// --- Initialize Stores ---
	settingsStore := syncstore.NewSettingsStore(settingsRepo, notifier, views, cfg.StoreLoadTimeout)
	if err := settingsStore.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start settings store")
	}
	defer settingsStore.Teardown()

	footerStore := syncstore.NewFooterStore(footerRepo, notifier, views, cfg.StoreLoadTimeout)
	if err := footerStore.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start footer store")
	}
	defer footerStore.Teardown()

	// --- Initialize Services ---
	authService := service.NewAuthService(authRepo, jwtUtil)
	settingsService := service.NewSettingsService(settingsRepo, notifier)
	footerService := service.NewFooterService(footerRepo, notifier)
	pricingService := service.NewPricingService(pricingRepo, notifier, cfg.PricingExclusivePopular)
	adminService := service.NewAdminService(adminRepo)

	seedInitialAdmin(ctx, adminService, cfg.InitialAdminEmail, cfg.InitialAdminPassword)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	publicHandler := handler.NewPublicHandler(settingsStore, footerStore, pricingService)
	contentHandler := handler.NewContentHandler(settingsService, footerService)
	pricingHandler := handler.NewPricingHandler(pricingService)
	adminHandler := handler.NewAdminHandler(adminService)
	signalHandler := handler.NewSignalHandler(hub)
	pageHandler := handler.NewPageHandler(handler.PageDeps{
		Settings:       settingsStore,
		Footer:         footerStore,
		Pricing:        pricingService,
		SettingsWriter: settingsService,
		FooterWriter:   footerService,
		Auth:           authService,
		SecureCookie:   gin.Mode() == gin.ReleaseMode,
	})

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(gin.Recovery(), utils.GinLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load templates")
	}
	router.SetHTMLTemplate(tmpl)

	// --- Initialize Middlewares ---
	sessionAuthMW := middleware.SessionAuthMiddleware(authService)
	adminRoleMW := middleware.AdminMiddleware()
	pageAuthMW := middleware.PageAuthMiddleware(authService)

	// --- Register Routes ---
	apiGroup := router.Group("/api/v1") // Base path for API
	authHandler.RegisterAuthRoutes(apiGroup, sessionAuthMW)
	publicHandler.RegisterPublicRoutes(apiGroup)
	signalHandler.RegisterSignalRoutes(apiGroup)
	contentHandler.RegisterContentRoutes(apiGroup, sessionAuthMW, adminRoleMW)
	pricingHandler.RegisterPricingRoutes(apiGroup, sessionAuthMW, adminRoleMW)
	adminHandler.RegisterAdminRoutes(apiGroup, sessionAuthMW, adminRoleMW)
	pageHandler.RegisterPageRoutes(&router.RouterGroup, pageAuthMW)

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"db":              "healthy",
			"signal_clients":  hub.ClientCount(),
			"settings_loaded": !settingsStore.Snapshot().LoadedAt.IsZero(),
		})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}

// seedInitialAdmin creates the first super admin when INITIAL_ADMIN_EMAIL is set
func seedInitialAdmin(ctx context.Context, admins service.AdminService, email, password string) {
	if email == "" || password == "" {
		return
	}

	_, err := admins.Create(ctx, model.CreateAdminRequest{
		Username: "admin",
		FullName: "Administrator",
		Email:    email,
		Password: password,
		Role:     model.RoleSuperAdmin,
	})
	switch {
	case err == nil:
		log.Info().Str("email", email).Msg("Initial admin created via INITIAL_ADMIN_EMAIL")
	case errors.Is(err, service.ErrAdminAlreadyExists):
		log.Debug().Str("email", email).Msg("Initial admin already exists")
	default:
		log.Error().Err(err).Msg("Failed to create initial admin")
	}
}
