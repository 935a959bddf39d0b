package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/dvloznov/finance-dashboard-proxy/internal/api/middleware"
	"github.com/dvloznov/finance-dashboard-proxy/internal/cache"
	"github.com/dvloznov/finance-dashboard-proxy/internal/domain"
	"github.com/dvloznov/finance-dashboard-proxy/internal/logger"
	"github.com/dvloznov/finance-dashboard-proxy/internal/notion"
	"github.com/rs/zerolog"
)

// HandlerFunc is an HTTP handler that reports failures instead of writing
// them. The router turns a returned error into a 500 response.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Endpoints lists the public data routes, as advertised by the catalog.
var Endpoints = []string{"/health", "/transactions", "/budgets", "/categories"}

// TransactionsResponse is the body of GET /transactions.
type TransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	Cached       bool                 `json:"cached"`
	Count        int                  `json:"count"`
}

// TransactionsHandler serves transactions from cache or Notion.
type TransactionsHandler struct {
	source notion.RecordSource
	cache  *cache.Cache
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(source notion.RecordSource, c *cache.Cache) *TransactionsHandler {
	return &TransactionsHandler{
		source: source,
		cache:  c,
	}
}

// ListTransactions handles GET /transactions
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var cached []domain.Transaction
	if h.cache.Get(ctx, cache.KeyTransactions, &cached) && cached != nil {
		middleware.WriteJSON(w, http.StatusOK, TransactionsResponse{
			Transactions: cached,
			Cached:       true,
			Count:        len(cached),
		})
		return nil
	}

	transactions, err := h.Load(ctx)
	if err != nil {
		return err
	}

	h.cache.Put(ctx, cache.KeyTransactions, transactions, cache.TTLTransactions)

	middleware.WriteJSON(w, http.StatusOK, TransactionsResponse{
		Transactions: transactions,
		Cached:       false,
		Count:        len(transactions),
	})
	return nil
}

// Load fetches every record from Notion and returns the dated transactions,
// newest first.
func (h *TransactionsHandler) Load(ctx context.Context) ([]domain.Transaction, error) {
	records, err := h.source.FetchAllRecords(ctx)
	if err != nil {
		return nil, err
	}

	transactions := notion.RecordsToTransactions(records)

	log := logger.FromContext(ctx)
	log.Info().
		Int("records", len(records)).
		Int("transactions", len(transactions)).
		Msg("Loaded transactions from Notion")

	return transactions, nil
}

// ConfigHandler serves the static budget and category configuration.
type ConfigHandler struct {
	cache *cache.Cache
}

// NewConfigHandler creates a new configuration handler.
func NewConfigHandler(c *cache.Cache) *ConfigHandler {
	return &ConfigHandler{cache: c}
}

// Budgets handles GET /budgets
func (h *ConfigHandler) Budgets(w http.ResponseWriter, r *http.Request) error {
	serveStatic(w, r, h.cache, cache.KeyBudgets, cache.TTLBudgets, domain.Budgets)
	return nil
}

// Categories handles GET /categories
func (h *ConfigHandler) Categories(w http.ResponseWriter, r *http.Request) error {
	serveStatic(w, r, h.cache, cache.KeyCategories, cache.TTLCategories, domain.Categories)
	return nil
}

// serveStatic answers from cache when possible, otherwise builds the value,
// caches it and answers with it. A cached null is a miss.
func serveStatic[T any](w http.ResponseWriter, r *http.Request, c *cache.Cache, key string, ttl time.Duration, build func() T) {
	ctx := r.Context()

	var cached *T
	if c.Get(ctx, key, &cached) && cached != nil {
		middleware.WriteJSON(w, http.StatusOK, cached)
		return
	}

	value := build()
	c.Put(ctx, key, value, ttl)
	middleware.WriteJSON(w, http.StatusOK, value)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	NotionDB  string `json:"notion_db"`
}

// HealthHandler reports liveness.
type HealthHandler struct {
	databaseID string
	now        func() time.Time
}

// NewHealthHandler creates a health handler for the configured database.
func NewHealthHandler(databaseID string) *HealthHandler {
	return &HealthHandler{databaseID: databaseID, now: time.Now}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) error {
	db := h.databaseID
	if db == "" {
		db = "not set"
	}
	middleware.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		NotionDB:  db,
	})
	return nil
}

// InvalidateResponse is the body of POST /cache/invalidate.
type InvalidateResponse struct {
	Message string   `json:"message"`
	Keys    []string `json:"keys"`
}

// CacheHandler manages cache entries.
type CacheHandler struct {
	cache  *cache.Cache
	secret string
	log    zerolog.Logger
}

// NewCacheHandler creates a cache handler guarded by the invalidation secret.
func NewCacheHandler(c *cache.Cache, secret string, log zerolog.Logger) *CacheHandler {
	return &CacheHandler{
		cache:  c,
		secret: secret,
		log:    log,
	}
}

// Invalidate handles POST /cache/invalidate
func (h *CacheHandler) Invalidate(w http.ResponseWriter, r *http.Request) error {
	if !middleware.SecretMatches(h.secret, r.Header.Get(middleware.InvalidateSecretHeader)) {
		middleware.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	keys := cache.Keys()
	if err := h.cache.Invalidate(r.Context(), keys); err != nil {
		h.log.Warn().Err(err).Strs("keys", keys).Msg("Cache invalidation incomplete")
	} else {
		h.log.Info().Strs("keys", keys).Bool("cache_enabled", h.cache.Enabled()).Msg("Cache invalidated")
	}

	middleware.WriteJSON(w, http.StatusOK, InvalidateResponse{
		Message: "Cache invalidated",
		Keys:    keys,
	})
	return nil
}

// CatalogResponse is returned for unknown paths.
type CatalogResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// Catalog lists the available endpoints.
func Catalog(w http.ResponseWriter, r *http.Request) error {
	middleware.WriteJSON(w, http.StatusOK, CatalogResponse{
		Message:   "Bandar Financial Dashboard API",
		Endpoints: Endpoints,
	})
	return nil
}
