package api

import (
	"net/http"

	"github.com/dvloznov/finance-dashboard-proxy/internal/api/handlers"
	"github.com/dvloznov/finance-dashboard-proxy/internal/api/middleware"
	"github.com/dvloznov/finance-dashboard-proxy/internal/cache"
	"github.com/dvloznov/finance-dashboard-proxy/internal/logger"
	"github.com/dvloznov/finance-dashboard-proxy/internal/notion"
	"github.com/rs/zerolog"
)

// Dependencies are the collaborators the HTTP surface needs.
type Dependencies struct {
	Source           notion.RecordSource
	Cache            *cache.Cache
	DatabaseID       string
	DashboardSecret  string
	InvalidateSecret string
	// Limiter is optional; nil disables rate limiting.
	Limiter *middleware.RateLimiter
	Log     zerolog.Logger
}

// Router dispatches a normalized path to its handler.
type Router struct {
	routes   map[string]handlers.HandlerFunc
	fallback handlers.HandlerFunc
}

// NewRouter builds the route table.
func NewRouter(deps Dependencies) *Router {
	transactions := handlers.NewTransactionsHandler(deps.Source, deps.Cache)
	config := handlers.NewConfigHandler(deps.Cache)
	health := handlers.NewHealthHandler(deps.DatabaseID)
	cacheHandler := handlers.NewCacheHandler(deps.Cache, deps.InvalidateSecret, deps.Log)

	return &Router{
		routes: map[string]handlers.HandlerFunc{
			middleware.HealthPath:     health.Health,
			"/transactions":           transactions.ListTransactions,
			"/budgets":                config.Budgets,
			"/categories":             config.Categories,
			middleware.InvalidatePath: cacheHandler.Invalidate,
		},
		fallback: handlers.Catalog,
	}
}

// ServeHTTP implements http.Handler.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, ok := rt.routes[middleware.CleanPath(r.URL.Path)]
	if !ok {
		h = rt.fallback
	}

	if err := h(w, r); err != nil {
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Internal error: "+err.Error())
	}
}

// NewHandler returns the full HTTP handler: the router behind the middleware
// chain. Preflight is answered before authentication, and authentication is
// checked before the method allow-list.
func NewHandler(deps Dependencies) http.Handler {
	var h http.Handler = NewRouter(deps)
	h = middleware.AllowMethods(h)
	h = middleware.DashboardAuth(deps.DashboardSecret)(h)
	h = middleware.RateLimit(deps.Limiter, deps.Log)(h)
	h = middleware.CORS(h)
	h = middleware.RequestID(deps.Log)(h)
	h = middleware.Logger(deps.Log)(h)
	return middleware.Recovery(deps.Log)(h)
}
