package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	identityapp "github.com/jakupie/backend/internal/application/identity"
	listingapp "github.com/jakupie/backend/internal/application/listing"
	ratingapp "github.com/jakupie/backend/internal/application/rating"
	"github.com/jakupie/backend/internal/domain/rating"
	"github.com/jakupie/backend/internal/infrastructure/auth"
	"github.com/jakupie/backend/internal/infrastructure/cache"
	"github.com/jakupie/backend/internal/infrastructure/config"
	"github.com/jakupie/backend/internal/infrastructure/logger"
	"github.com/jakupie/backend/internal/infrastructure/persistence"
	"github.com/jakupie/backend/internal/interfaces/http/handler"
	"github.com/jakupie/backend/internal/interfaces/http/middleware"
	"github.com/jakupie/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting jakupie backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	// Session and stats-cache stores. Redis when configured, in-process
	// stores otherwise so local development needs no extra services.
	var sessionStore auth.SessionStore
	var statsCache rating.StatsCache
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		sessionStore = auth.NewRedisSessionStore(redisClient)
		statsCache = cache.NewRedisStatsCache(redisClient)
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		sessionStore = auth.NewMemorySessionStore()
		statsCache = cache.NewMemoryStatsCache()
		log.Warn("Redis not configured, using in-process session and cache stores")
	}

	sessionService := auth.NewSessionService(sessionStore, cfg.Session.TTL)

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	adRepo := persistence.NewGormAdRepository(db.DB)
	responseRepo := persistence.NewGormAdResponseRepository(db.DB)
	ratingRepo := persistence.NewGormRatingRepository(db.DB)

	// Initialize application services
	authService := identityapp.NewAuthService(userRepo, sessionService, cfg.Admin.Emails, log)
	categoryService := listingapp.NewCategoryService(categoryRepo)
	adService := listingapp.NewAdService(adRepo, responseRepo, categoryRepo, log)
	responseService := listingapp.NewResponseService(responseRepo, adRepo, log)
	ratingService := ratingapp.NewRatingService(ratingRepo, userRepo, adRepo, statsCache, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService, cfg.Session)
	userHandler := handler.NewUserHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	adHandler := handler.NewAdHandler(adService)
	responseHandler := handler.NewResponseHandler(responseService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom validators before any routes bind requests
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Session middleware. OptionalAuth runs on every API route so that
	// public endpoints still see the caller when a cookie is present.
	sessionMW := middleware.NewSessionMiddleware(sessionService, userRepo, authService.IsAdmin, cfg.Session.CookieName)
	requireAuth := sessionMW.RequireAuth()
	requireAdmin := sessionMW.RequireAdmin()

	// Stricter limiter for credential endpoints
	var authLimit gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authLimit = middleware.RateLimit(authLimiter)
	}

	r := router.NewRouter(engine)
	r.Register(router.RegistrarFunc(func(rg *gin.RouterGroup) {
		rg.Use(sessionMW.OptionalAuth())
	}))
	r.Register(router.RegistrarFunc(func(rg *gin.RouterGroup) {
		if authLimit != nil {
			grp := rg.Group("")
			grp.Use(authLimit)
			authHandler.RegisterRoutes(grp, requireAuth)
			return
		}
		authHandler.RegisterRoutes(rg, requireAuth)
	}))
	r.Register(userHandler)
	r.Register(router.RegistrarFunc(func(rg *gin.RouterGroup) {
		categoryHandler.RegisterRoutes(rg, requireAuth, requireAdmin)
	}))
	r.Register(router.RegistrarFunc(func(rg *gin.RouterGroup) {
		adHandler.RegisterRoutes(rg, requireAuth, requireAdmin)
	}))
	r.Register(router.RegistrarFunc(func(rg *gin.RouterGroup) {
		responseHandler.RegisterRoutes(rg, requireAuth)
	}))
	r.Register(router.RegistrarFunc(func(rg *gin.RouterGroup) {
		ratingHandler.RegisterRoutes(rg, requireAuth)
	}))
	r.Setup()

	// Liveness probe outside the API group
	systemHandler.RegisterRoutes(engine)

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
