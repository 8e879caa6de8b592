package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IGN03/TMC/api/controllers"
	"github.com/IGN03/TMC/api/middleware"
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
	"github.com/IGN03/TMC/pkg/redis"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          *db.Client
	Redis       *redis.Client
	Sessions    session.AccessSessionChecker
	HTTPMetrics *metrics.HTTPMetrics

	AuthService     authsvc.Service
	MenuService     menusvc.Service
	LocationService locsvc.Service
	AccountService  acctsvc.Service
	OrderService    ordersvc.Service
	CheckoutService checkoutsvc.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(p.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, p.DB, p.Redis, logg))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(
			middleware.AuthRateLimit(registerPolicy, p.Redis, logg),
			middleware.Idempotency(p.Redis, logg),
		).Post("/register", controllers.Register(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).Post("/login", controllers.Login(p.AuthService, logg))
		r.Post("/refresh", controllers.Refresh(p.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, p.Sessions, logg)).Post("/logout", controllers.Logout(p.AuthService, logg))
	})

	// Browsing the menu and pickup points needs no account.
	r.Route("/api/v1/menu-items", func(r chi.Router) {
		r.Get("/", controllers.MenuList(p.MenuService, logg))
		r.Get("/{id}", controllers.MenuGet(p.MenuService, logg))
	})
	r.Route("/api/v1/pickup-locations", func(r chi.Router) {
		r.Get("/", controllers.LocationList(p.LocationService, logg))
		r.Get("/{id}", controllers.LocationGet(p.LocationService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))
		r.Use(middleware.Idempotency(p.Redis, logg))

		r.Route("/accounts/me", func(r chi.Router) {
			r.Get("/", controllers.AccountMe(p.AccountService, logg))
			r.Put("/", controllers.AccountUpdateMe(p.AccountService, logg))
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(p.AccountService, logg))
				r.Put("/", controllers.CartReplace(p.AccountService, logg))
				r.Delete("/", controllers.CartClear(p.AccountService, logg))
			})
		})

		r.Post("/checkout", controllers.Checkout(p.CheckoutService, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersMine(p.OrderService, logg))
			r.Get("/{id}", controllers.OrderGet(p.OrderService, logg))
		})

		r.Route("/staff", func(r chi.Router) {
			r.Use(middleware.RequireStaff(logg))

			r.Route("/menu-items", func(r chi.Router) {
				r.Get("/", controllers.StaffMenuList(p.MenuService, logg))
				r.Post("/", controllers.MenuCreate(p.MenuService, logg))
				r.Put("/{id}", controllers.MenuUpdate(p.MenuService, logg))
			})
			r.Route("/pickup-locations", func(r chi.Router) {
				r.Get("/", controllers.StaffLocationList(p.LocationService, logg))
				r.Post("/", controllers.LocationCreate(p.LocationService, logg))
				r.Put("/{id}", controllers.LocationUpdate(p.LocationService, logg))
				r.Post("/{id}/activate", controllers.LocationActivate(p.LocationService, logg))
			})
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.StaffOpenOrders(p.OrderService, logg))
				r.Post("/{id}/complete", controllers.OrderComplete(p.OrderService, logg))
			})
		})
	})

	return r
}
