// File: cardoctor/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardoctor/config"
	"cardoctor/database"
	bookingRepo "cardoctor/database/repository/booking"
	serviceRepo "cardoctor/database/repository/service"
	"cardoctor/handlers"
	"cardoctor/middleware"
	"cardoctor/routes"
	"cardoctor/services/catalog"
	"cardoctor/services/session"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(rootCtx, cfg.MongoURI())
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	logger.Info("main: connected to MongoDB")
	db := mongoClient.Database(cfg.DBName)

	if err := bookingRepo.EnsureIndexes(rootCtx, db); err != nil {
		logger.Warn("main: failed to ensure booking indexes", zap.Error(err))
	}

	cacheClient, err := utils.NewCacheClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	cld, err := utils.Cloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
	}

	utils.StartHealthMonitor(rootCtx, 60*time.Second, mongoClient, cacheClient)

	// repositories.
	svcRepo := serviceRepo.NewMongoServiceRepo(db, cfg.DBTimeout)
	bkRepo := bookingRepo.NewMongoBookingRepo(db, cfg.DBTimeout)

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:   svcRepo,
		Logger: logger,
	}
	if cacheClient != nil {
		catalogService.Cache = catalog.NewRedisServiceCache(cacheClient, cfg.ServicesCacheTTL)
	}
	if cld != nil {
		catalogService.Images = catalog.NewCloudinaryImageResolver(cld)
	}
	sessionService := session.NewSessionService(cfg.JWTSecret, cfg.SessionTTL)

	sessionHandler := handlers.NewSessionHandler(sessionService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	bookingHandler := handlers.NewBookingHandler(bkRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessionService,

		IssueTokenHandler: sessionHandler.IssueTokenHandler,
		LogoutHandler:     sessionHandler.LogoutHandler,

		ListServicesHandler: catalogHandler.ListServicesHandler,
		GetServiceHandler:   catalogHandler.GetServiceHandler,

		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		DeleteBookingHandler:       bookingHandler.DeleteBookingHandler,
	}

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(middleware.RequestLoggerMiddleware(logger))
	router.Use(utils.ErrorHandler())
	routes.RegisterRoutes(router, handlerBundle, cfg.CORSOrigins)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("car doctor server is running on %s", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	if cacheClient != nil {
		if err := cacheClient.Close(); err != nil {
			logger.Warn("main: failed to close redis", zap.Error(err))
		}
	}
	if err := database.Disconnect(mongoClient, 5*time.Second); err != nil {
		logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
