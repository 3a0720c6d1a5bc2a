package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	approvalapp "github.com/estate/backend/internal/application/approval"
	bookingapp "github.com/estate/backend/internal/application/booking"
	crmapp "github.com/estate/backend/internal/application/crm"
	financeapp "github.com/estate/backend/internal/application/finance"
	identityapp "github.com/estate/backend/internal/application/identity"
	planningapp "github.com/estate/backend/internal/application/planning"
	realtyapp "github.com/estate/backend/internal/application/realty"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/estate/backend/internal/infrastructure/auth"
	"github.com/estate/backend/internal/infrastructure/cache"
	"github.com/estate/backend/internal/infrastructure/config"
	"github.com/estate/backend/internal/infrastructure/logger"
	"github.com/estate/backend/internal/infrastructure/persistence"
	"github.com/estate/backend/internal/infrastructure/storage"
	"github.com/estate/backend/internal/interfaces/http/handler"
	"github.com/estate/backend/internal/interfaces/http/middleware"
	"github.com/estate/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

const appVersion = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting booking backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogLevel := gormlogger.Silent
	if cfg.Log.Level == "debug" {
		gormLogLevel = gormlogger.Info
	}
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	idemStore, err := cache.NewIdempotencyStore(cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to initialize idempotency store", zap.Error(err))
	}
	defer func() {
		if err := idemStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}()

	attachmentStore, err := storage.NewAttachmentStorage(cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize attachment storage", zap.Error(err))
	}

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	planRepo := persistence.NewGormPaymentPlanRepository(db.DB)
	bookingRepo := persistence.NewGormBookingRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	approvalRepo := persistence.NewGormApprovalRepository(db.DB)

	// Transaction scopes
	crmScope := persistence.NewGormCRMTransactionScope(db.DB)
	bookingScope := persistence.NewGormBookingTransactionScope(db.DB)
	approvalScope := persistence.NewGormApprovalTransactionScope(db.DB)

	// Application services
	clientService := crmapp.NewClientService(clientRepo, crmScope)
	userService := identityapp.NewUserService(userRepo)
	projectService := realtyapp.NewProjectService(projectRepo)
	propertyService := realtyapp.NewPropertyService(propertyRepo, projectRepo)
	planService := planningapp.NewPaymentPlanService(planRepo, projectRepo, attachmentStore)
	bookingService := bookingapp.NewBookingService(bookingRepo, bookingScope)
	invoiceService := financeapp.NewInvoiceService(invoiceRepo, clientRepo)
	approvalService := approvalapp.NewApprovalService(approvalRepo, approvalScope, idemStore,
		shared.IdempotencyConfig{Enabled: cfg.Idempotency.Enabled, TTL: cfg.Idempotency.TTL})

	jwtService := auth.NewJWTService(cfg.JWT)

	// Handlers
	systemHandler := handler.NewSystemHandler(db, appVersion)
	authHandler := handler.NewAuthHandler(userService, jwtService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	projectHandler := handler.NewProjectHandler(projectService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	planHandler := handler.NewPaymentPlanHandler(planService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	approvalHandler := handler.NewApprovalHandler(approvalService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	r := router.New(engine, jwtService)
	r.RegisterPublic(systemHandler, authHandler)
	r.Register(
		router.RegistrarFunc(authHandler.RegisterProtectedRoutes),
		userHandler,
		clientHandler,
		projectHandler,
		propertyHandler,
		planHandler,
		bookingHandler,
		approvalHandler,
		invoiceHandler,
	)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
