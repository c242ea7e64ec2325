// File: serviceswebiste/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/velaug24it-bit/serviceswebiste/config"
	"github.com/velaug24it-bit/serviceswebiste/cron"
	bookingRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/booking"
	providerRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/provider"
	userRepoPkg "github.com/velaug24it-bit/serviceswebiste/database/repository/user"
	"github.com/velaug24it-bit/serviceswebiste/database/seed"
	"github.com/velaug24it-bit/serviceswebiste/handlers"
	"github.com/velaug24it-bit/serviceswebiste/middleware"
	"github.com/velaug24it-bit/serviceswebiste/models"
	"github.com/velaug24it-bit/serviceswebiste/routes"
	"github.com/velaug24it-bit/serviceswebiste/services/booking"
	"github.com/velaug24it-bit/serviceswebiste/services/provider"
	"github.com/velaug24it-bit/serviceswebiste/services/session"
	"github.com/velaug24it-bit/serviceswebiste/services/user"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Session revocation lives in Redis when configured, otherwise in memory.
	var sessions session.Store = session.NewMemoryStore()
	authCache, err := utils.NewAuthCacheClient(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to redis: %v", err)
	}
	if authCache != nil {
		sessions = session.NewRedisStore(authCache)
		defer authCache.Close()
	}

	// repositories.
	var catalog []models.Provider
	if config.AppConfig.SeedProviders {
		catalog = seed.Providers()
	}
	provRepo := providerRepo.NewMemoryProviderRepo(catalog)
	userRepo := userRepoPkg.NewMemoryUserRepo()
	bookRepo := bookingRepo.NewMemoryBookingRepo()

	// services.
	tokens := utils.NewTokenIssuer(config.AppConfig.JWTSecret, config.AppConfig.TokenTTL)
	providerService := provider.NewDefaultProviderService(provRepo, bookRepo)
	userService := user.NewDefaultUserService(userRepo, providerService, tokens, sessions)
	bookingService := booking.NewDefaultBookingService(bookRepo, provRepo, userRepo, config.AppConfig.ClampProgress)

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, authCache, time.Minute)

	simulator, err := cron.StartSimulator(config.AppConfig.SimulatorSchedule, bookingService)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		tokens,
		sessions,
		handlers.NewUserHandler(userService),
		handlers.NewProviderHandler(providerService),
		handlers.NewBookingHandler(bookingService, logger),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server",
		zap.String("addr", srv.Addr),
		zap.Int("providers", len(catalog)),
		zap.String("env", config.GetEnv()),
	)
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

	if simulator != nil {
		<-simulator.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
