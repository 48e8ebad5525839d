// File: aspcare/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aspcare/config"
	"aspcare/cron"
	"aspcare/database"
	recordsRepo "aspcare/database/repository/records"
	"aspcare/handlers"
	"aspcare/middleware"
	"aspcare/routes"
	"aspcare/services/audit"
	"aspcare/services/auth"
	"aspcare/services/booking"
	"aspcare/services/payment"
	"aspcare/services/remote"
	"aspcare/services/session"
	"aspcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

const devSealKey = "aspcare-development-seal-key"

// sealKey picks the secret used to encrypt upstream tokens at rest.
func sealKey(logger *zap.Logger) string {
	if k := config.AppConfig.SessionSealKey; k != "" {
		return k
	}
	if k := config.AppConfig.JWTSecret; k != "" {
		return k
	}
	if config.IsProduction() {
		logger.Fatal("main: SESSION_SEAL_KEY or JWT_SECRET must be set in production")
	}
	logger.Warn("main: no seal key configured, using the development default")
	return devSealKey
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if config.AppConfig.JWTSecret == "" {
			logger.Fatal("main: JWT_SECRET must be set in production")
		}
	}
	utils.SetJWTSecret(config.AppConfig.JWTSecret)

	sealer, err := utils.NewSealer(sealKey(logger))
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build token sealer: %v", err)
	}

	// Redis-backed stores.
	utils.InitSessionCache()
	utils.InitCheckoutCache()
	sessionStore := session.NewRedisStore(utils.GetSessionClient(), sealer, config.SessionTTL())
	checkoutStore := session.NewCheckoutStore(utils.GetCheckoutClient(), config.CheckoutTTL())

	healthChecks := []utils.HealthCheck{
		{Name: "redis-session", Ping: func(ctx context.Context) error { return utils.GetSessionClient().Ping(ctx).Err() }},
		{Name: "redis-checkout", Ping: func(ctx context.Context) error { return utils.GetCheckoutClient().Ping(ctx).Err() }},
	}

	// Upstream call audit: asynq queue consumed into Mongo.
	var recorder audit.Recorder = audit.NopRecorder{}
	var auditWorker *asynq.Server
	var queueClient *asynq.Client
	if config.AppConfig.AuditEnabled {
		if err := database.InitDB(); err != nil {
			logger.Warn("main: audit disabled, database unavailable", zap.Error(err))
		} else {
			repo := recordsRepo.NewMongoAuditRepo(config.AppConfig.AuditDBName)
			if err := repo.EnsureIndexes(); err != nil {
				logger.Warn("main: failed to ensure audit indexes", zap.Error(err))
			}
			auditWorker = cron.InitAuditWorker(repo)
			queueClient = asynq.NewClient(utils.QueueRedisOpt())
			recorder = audit.NewQueueRecorder(queueClient, logger)
			healthChecks = append(healthChecks, utils.HealthCheck{Name: "mongo", Ping: database.Ping})
		}
	}

	upstream := remote.NewClient(config.AppConfig.UpstreamBaseURL, config.UpstreamTimeout(), logger, recorder)

	var payments payment.IntentCreator = payment.Disabled{}
	if config.AppConfig.StripeKey != "" {
		stripe.Key = config.AppConfig.StripeKey
		payments = payment.NewStripeIntents(logger)
	} else {
		logger.Info("main: STRIPE_KEY not set, online payment disabled")
	}

	// services.
	clock := booking.SystemClock{Location: config.Location()}
	currency := config.AppConfig.DefaultCurrency

	bookingService := &booking.DefaultBookingService{
		Upstream:  upstream,
		Rates:     booking.NewRateResolver(upstream, currency, logger),
		Checkouts: checkoutStore,
		Payments:  payments,
		Clock:     clock,
		Logger:    logger,
		Currency:  currency,
	}
	membershipService := &booking.DefaultMembershipService{
		Upstream: upstream,
		Payments: payments,
		Logger:   logger,
		Currency: currency,
	}
	directoryService := &booking.DefaultDirectoryService{
		Upstream: upstream,
		Clock:    clock,
		Logger:   logger,
		Currency: currency,
	}
	authService := &auth.DefaultAuthService{
		Upstream:  upstream,
		Sessions:  sessionStore,
		Checkouts: checkoutStore,
		TokenTTL:  config.SessionTTL(),
		Logger:    logger,
	}

	handlerBundle := handlers.NewHandlerBundle(
		sessionStore,
		handlers.NewAuthHandler(authService, sessionStore),
		handlers.NewBookingHandler(bookingService),
		handlers.NewMembershipHandler(membershipService),
		handlers.NewDirectoryHandler(directoryService),
	)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(config.TrustedProxies()); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	utils.StartHealthMonitor(monitorCtx, 30*time.Second, healthChecks)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	stopMonitor()

	if queueClient != nil {
		_ = queueClient.Close()
	}
	if auditWorker != nil {
		auditWorker.Shutdown()
	}
	database.CloseDB()

	logger.Sugar().Info("main: server stopped gracefully")
}
