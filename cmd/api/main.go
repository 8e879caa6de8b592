package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/IGN03/TMC/api/routes"
	acctsvc "github.com/IGN03/TMC/internal/accounts"
	authsvc "github.com/IGN03/TMC/internal/auth"
	checkoutsvc "github.com/IGN03/TMC/internal/checkout"
	locsvc "github.com/IGN03/TMC/internal/locations"
	menusvc "github.com/IGN03/TMC/internal/menu"
	ordersvc "github.com/IGN03/TMC/internal/orders"
	"github.com/IGN03/TMC/pkg/auth/session"
	"github.com/IGN03/TMC/pkg/config"
	"github.com/IGN03/TMC/pkg/db"
	"github.com/IGN03/TMC/pkg/logger"
	"github.com/IGN03/TMC/pkg/metrics"
	"github.com/IGN03/TMC/pkg/migrate"
	"github.com/IGN03/TMC/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	accountRepo := acctsvc.NewRepository(dbClient.DB())
	menuRepo := menusvc.NewRepository(dbClient.DB())
	locationRepo := locsvc.NewRepository(dbClient.DB())
	orderRepo := ordersvc.NewRepository(dbClient.DB())

	accountService, err := acctsvc.NewService(accountRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create account service", err)
		os.Exit(1)
	}
	menuService, err := menusvc.NewService(menuRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}
	locationService, err := locsvc.NewService(locationRepo, dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create location service", err)
		os.Exit(1)
	}
	orderService, err := ordersvc.NewService(orderRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}
	checkoutService, err := checkoutsvc.NewService(accountRepo, menuRepo, locationRepo, orderRepo, dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}
	authService, err := authsvc.NewService(authsvc.ServiceParams{
		AccountRepo:    accountRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:          cfg,
			Logger:          logg,
			DB:              dbClient,
			Redis:           redisClient,
			Sessions:        sessionManager,
			HTTPMetrics:     httpMetrics,
			AuthService:     authService,
			MenuService:     menuService,
			LocationService: locationService,
			AccountService:  accountService,
			OrderService:    orderService,
			CheckoutService: checkoutService,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	cleanupErr := multierr.Combine(redisClient.Close(), dbClient.Close())
	if cleanupErr != nil {
		logg.Error(ctx, "error releasing resources", cleanupErr)
		os.Exit(1)
	}
}
