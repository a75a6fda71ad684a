package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/auth"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/config"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/middleware"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/repository"
)

// RouterOptions bundles everything the HTTP router depends on.
type RouterOptions struct {
	Cfg    *config.Config
	Issuer *auth.TokenIssuer

	Users     repository.UserRepository
	Clients   repository.ClientRepository
	Invoices  repository.InvoiceRepository
	Projects  repository.ProjectRepository
	Expenses  repository.ExpenseRepository
	FollowUps repository.FollowUpRepository
	Plans     repository.PlanRepository
}

// DefaultCORSOptions returns the CORS policy for the browser frontend.
func DefaultCORSOptions(allowedOrigins []string) cors.Options {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}
	return cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// NewRouter assembles the chi router with shared middleware, the public auth
// endpoints, and the bearer-protected API surface.
func NewRouter(opts RouterOptions) (chi.Router, error) {
	authn, err := middleware.NewAuthnMiddleware(middleware.AuthnDependencies{
		Issuer: opts.Issuer,
		Users:  opts.Users,
	}, 0)
	if err != nil {
		return nil, fmt.Errorf("build authn middleware: %w", err)
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	var allowedOrigins []string
	if opts.Cfg != nil {
		allowedOrigins = opts.Cfg.CORSAllowedOrigins
	}
	r.Use(cors.Handler(DefaultCORSOptions(allowedOrigins)))

	r.Get("/health", healthHandler)
	r.Post("/api/auth/login", HandleLogin(opts.Users, opts.Issuer))

	r.Route("/api", func(r chi.Router) {
		r.Use(authn)

		r.Get("/auth/whoami", HandleWhoami(opts.Users))
		r.Post("/auth/logout", HandleLogout())

		MountClientRoutes(r, opts.Clients)
		MountInvoiceRoutes(r, opts.Invoices, opts.Clients)
		MountProjectRoutes(r, opts.Projects, opts.Clients)
		MountExpenseRoutes(r, opts.Expenses)
		MountFollowUpRoutes(r, opts.FollowUps, opts.Clients)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(RoleSuperadmin))
			MountSuperadminRoutes(r, opts.Users, opts.Plans)
		})
	})

	return r, nil
}

// NewH2CHandler wraps the router with an h2c server so HTTP/2 works over
// cleartext during development.
func NewH2CHandler(opts RouterOptions) (http.Handler, error) {
	router, err := NewRouter(opts)
	if err != nil {
		return nil, err
	}
	return h2c.NewHandler(router, &http2.Server{}), nil
}
