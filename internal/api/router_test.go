package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dvloznov/finance-dashboard-proxy/internal/api/middleware"
	"github.com/dvloznov/finance-dashboard-proxy/internal/cache"
	"github.com/dvloznov/finance-dashboard-proxy/internal/notion"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	dashSecret = "dash-secret"
	invSecret  = "inv-secret"
)

type mockSource struct {
	mu      sync.Mutex
	records []notion.Record
	err     error
	calls   int
	panicky bool
}

func (m *mockSource) FetchAllRecords(ctx context.Context) ([]notion.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.panicky {
		panic("upstream exploded")
	}
	return m.records, m.err
}

// countingStore records every call that reaches the backing store.
type countingStore struct {
	cache.Store
	mu       sync.Mutex
	calls    int
	failKeys map[string]bool
}

func (s *countingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *countingStore) bump() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

func (s *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.bump()
	return s.Store.Get(ctx, key)
}

func (s *countingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.bump()
	return s.Store.Set(ctx, key, value, ttl)
}

func (s *countingStore) Delete(ctx context.Context, key string) error {
	s.bump()
	if s.failKeys[key] {
		return errors.New("delete refused")
	}
	return s.Store.Delete(ctx, key)
}

type fixture struct {
	handler http.Handler
	source  *mockSource
	store   *countingStore
}

func newFixture(t *testing.T, backing cache.Store) *fixture {
	t.Helper()
	var recs []notion.Record
	for _, raw := range []string{
		`{"id":"a","properties":{"Date":{"date":{"start":"2024-01-05"}},"Merchant":{"title":[{"plain_text":"Older"}]},"Card":{"select":{"name":"Al Rajhi 2"}}}}`,
		`{"id":"b","properties":{"Merchant":{"title":[{"plain_text":"Undated"}]}}}`,
		`{"id":"c","properties":{"Date":{"date":{"start":"2024-02-01T08:00:00.000+03:00"}},"Merchant":{"title":[{"plain_text":"Newer"}]},"Category":{"select":{"name":"Foo"}}}}`,
	} {
		var rec notion.Record
		require.NoError(t, json.Unmarshal([]byte(raw), &rec))
		recs = append(recs, rec)
	}

	f := &fixture{source: &mockSource{records: recs}}
	var c *cache.Cache
	if backing != nil {
		f.store = &countingStore{Store: backing, failKeys: map[string]bool{}}
		c = cache.New(f.store, zerolog.Nop())
	} else {
		c = cache.New(nil, zerolog.Nop())
	}

	f.handler = NewHandler(Dependencies{
		Source:           f.source,
		Cache:            c,
		DatabaseID:       "db-42",
		DashboardSecret:  dashSecret,
		InvalidateSecret: invSecret,
		Log:              zerolog.Nop(),
	})
	return f
}

func (f *fixture) do(method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func authed() map[string]string {
	return map[string]string{middleware.DashboardSecretHeader: dashSecret}
}

type txBody struct {
	Transactions []struct {
		Date     *string `json:"date"`
		Merchant string  `json:"merchant"`
		Source   string  `json:"source"`
		Category string  `json:"category"`
	} `json:"transactions"`
	Cached bool `json:"cached"`
	Count  int  `json:"count"`
}

func TestRouter_Preflight(t *testing.T) {
	f := newFixture(t, cache.NewMemoryStore())

	rec := f.do(http.MethodOptions, "/transactions", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, 0, f.source.calls)
}

func TestRouter_HealthIsPublic(t *testing.T) {
	f := newFixture(t, cache.NewMemoryStore())

	rec := f.do(http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "db-42", body["notion_db"])
	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}

func TestRouter_UnauthenticatedTouchesNothing(t *testing.T) {
	f := newFixture(t, cache.NewMemoryStore())

	for _, path := range []string{"/transactions", "/budgets", "/categories", "/cache/invalidate", "/", "/nope"} {
		for _, headers := range []map[string]string{nil, {middleware.DashboardSecretHeader: "wrong"}} {
			rec := f.do(http.MethodGet, path, headers)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		}
	}

	assert.Equal(t, 0, f.source.calls)
	assert.Equal(t, 0, f.store.count())
}

func TestRouter_AuthBeforeMethodCheck(t *testing.T) {
	f := newFixture(t, cache.NewMemoryStore())

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPut, "/budgets", nil).Code)

	rec := f.do(http.MethodPut, "/budgets", authed())
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())

	assert.Equal(t, http.StatusMethodNotAllowed, f.do(http.MethodPost, "/transactions", authed()).Code)
}

func TestRouter_Transactions(t *testing.T) {
	f := newFixture(t, cache.NewMemoryStore())

	first := f.do(http.MethodGet, "/transactions", authed())
	require.Equal(t, http.StatusOK, first.Code)

	var body txBody
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &body))
	assert.False(t, body.Cached)
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, "Newer", body.Transactions[0].Merchant)
	assert.Equal(t, "Foo", body.Transactions[0].Category)
	assert.Equal(t, "other", body.Transactions[0].Source)
	assert.Equal(t, "Older", body.Transactions[1].Merchant)
	assert.Equal(t, "alrajhi", body.Transactions[1].Source)
	for _, tx := range body.Transactions {
		assert.NotNil(t, tx.Date)
	}

	second := f.do(http.MethodGet, "/transactions/?secret="+dashSecret, nil)
	var cached txBody
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &cached))
	assert.True(t, cached.Cached)
	assert.Equal(t, body.Transactions, cached.Transactions)
	assert.Equal(t, 1, f.source.calls)
}

func TestRouter_TransactionsWithoutCache(t *testing.T) {
	f := newFixture(t, nil)

	for i := 0; i < 2; i++ {
		rec := f.do(http.MethodGet, "/transactions", authed())
		require.Equal(t, http.StatusOK, rec.Code)

		var body txBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Cached)
		assert.Equal(t, 2, body.Count)
	}
	assert.Equal(t, 2, f.source.calls)
}

func TestRouter_UpstreamErrorIs500(t *testing.T) {
	f := newFixture(t, cache.NewMemoryStore())
	f.source.err = &notion.UpstreamError{Status: 502, Body: "bad gateway"}

	rec := f.do(http.MethodGet, "/transactions", authed())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal error: Notion API error 502: bad gateway"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_PanicIs500(t *testing.T) {
	f := newFixture(t, nil)
	f.source.panicky = true

	rec := f.do(http.MethodGet, "/transactions", authed())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal error: upstream exploded"}`, rec.Body.String())
}

func TestRouter_StaticRoutesIdenticalAcrossCacheStates(t *testing.T) {
	for _, path := range []string{"/budgets", "/categories"} {
		t.Run(path, func(t *testing.T) {
			withCache := newFixture(t, cache.NewMemoryStore())
			without := newFixture(t, nil)

			miss := withCache.do(http.MethodGet, path, authed())
			hit := withCache.do(http.MethodGet, path, authed())
			uncached := without.do(http.MethodGet, path, authed())

			require.Equal(t, http.StatusOK, miss.Code)
			assert.Equal(t, miss.Body.String(), hit.Body.String())
			assert.Equal(t, miss.Body.String(), uncached.Body.String())
		})
	}
}

func TestRouter_Invalidate(t *testing.T) {
	mr := miniredis.RunT(t)
	redisStore, err := cache.NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	defer redisStore.Close()

	f := newFixture(t, redisStore)

	f.do(http.MethodGet, "/transactions", authed())
	f.do(http.MethodGet, "/budgets", authed())
	f.do(http.MethodGet, "/categories", authed())
	for _, k := range cache.Keys() {
		require.True(t, mr.Exists(k), k)
	}
	assert.Equal(t, cache.TTLTransactions, mr.TTL(cache.KeyTransactions))
	assert.Equal(t, cache.TTLBudgets, mr.TTL(cache.KeyBudgets))

	// Wrong invalidation secret deletes nothing.
	headers := authed()
	headers[middleware.InvalidateSecretHeader] = "wrong"
	before := f.store.count()
	rec := f.do(http.MethodPost, "/cache/invalidate", headers)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, before, f.store.count())
	for _, k := range cache.Keys() {
		assert.True(t, mr.Exists(k), k)
	}

	// One failing delete does not stop the others.
	f.store.failKeys[cache.KeyBudgets] = true
	headers[middleware.InvalidateSecretHeader] = invSecret
	rec = f.do(http.MethodPost, "/cache/invalidate", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Cache invalidated","keys":["transactions_v1","budgets_v1","categories_v1"]}`, rec.Body.String())
	assert.False(t, mr.Exists(cache.KeyTransactions))
	assert.True(t, mr.Exists(cache.KeyBudgets))
	assert.False(t, mr.Exists(cache.KeyCategories))

	// Next read refetches from upstream.
	next := f.do(http.MethodGet, "/transactions", authed())
	var body txBody
	require.NoError(t, json.Unmarshal(next.Body.Bytes(), &body))
	assert.False(t, body.Cached)
	assert.Equal(t, 2, f.source.calls)
}

func TestRouter_InvalidateNeedsDashboardSecretToo(t *testing.T) {
	f := newFixture(t, cache.NewMemoryStore())

	rec := f.do(http.MethodPost, "/cache/invalidate", map[string]string{middleware.InvalidateSecretHeader: invSecret})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, f.store.count())
}

func TestRouter_RedisTTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	redisStore, err := cache.NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	defer redisStore.Close()

	f := newFixture(t, redisStore)

	f.do(http.MethodGet, "/transactions", authed())
	mr.FastForward(cache.TTLTransactions)

	rec := f.do(http.MethodGet, "/transactions", authed())
	var body txBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Cached)
	assert.Equal(t, 2, f.source.calls)
}

func TestRouter_Catalog(t *testing.T) {
	f := newFixture(t, nil)

	for _, path := range []string{"/", "/unknown", "/transactions/extra"} {
		rec := f.do(http.MethodGet, path, authed())
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.True(t, strings.Contains(rec.Body.String(), `"endpoints"`), path)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, 1)
	defer limiter.Stop()

	h := NewHandler(Dependencies{
		Source:          &mockSource{},
		Cache:           cache.New(nil, zerolog.Nop()),
		DashboardSecret: dashSecret,
		Limiter:         limiter,
		Log:             zerolog.Nop(),
	})

	req := httptest.NewRequest(http.MethodGet, "/budgets", nil)
	req.Header.Set(middleware.DashboardSecretHeader, dashSecret)

	first := httptest.NewRecorder()
	h.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRouter_AmpersandsSentRaw(t *testing.T) {
	f := newFixture(t, cache.NewMemoryStore())

	for _, path := range []string{"/budgets", "/categories"} {
		miss := f.do(http.MethodGet, path, authed())
		hit := f.do(http.MethodGet, path, authed())

		require.Equal(t, http.StatusOK, miss.Code, path)
		assert.Contains(t, miss.Body.String(), `"Kids & Family"`, path)
		assert.NotContains(t, miss.Body.String(), `\u0026`, path)
		assert.Equal(t, miss.Body.String(), hit.Body.String(), path)
	}
}
