package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"tag-validator/internal/config"
	"tag-validator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

const catalogKey = "tagvalidator:catalog:document:latest"

func newCatalogServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func testCatalogConfig(url string) config.CatalogConfig {
	return config.CatalogConfig{URL: url, Timeout: 2 * time.Second, RetryCount: 0, CacheTTL: time.Hour}
}

func TestHTTPCatalogProvider_Load_FetchesOnce(t *testing.T) {
	srv, hits := newCatalogServer(t, http.StatusOK, sampleDocument)
	provider := NewHTTPCatalogProvider(testCatalogConfig(srv.URL), nil, zap.NewNop())

	first, err := provider.Load(context.Background())
	require.NoError(t, err)
	second, err := provider.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
	assert.Equal(t, first, second)
	assert.True(t, first.Lookup(domain.ModuleMCQ).HasTopic("TOPIC_LOOPS"))
}

func TestHTTPCatalogProvider_Load_CachesRawDocument(t *testing.T) {
	srv, _ := newCatalogServer(t, http.StatusOK, sampleDocument)
	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, catalogKey).Return("", domain.ErrCacheMiss).Once()
	mockCache.On("Set", mock.Anything, catalogKey, sampleDocument, time.Hour).Return(nil).Once()

	provider := NewHTTPCatalogProvider(testCatalogConfig(srv.URL), mockCache, zap.NewNop())
	_, err := provider.Load(context.Background())

	require.NoError(t, err)
	mockCache.AssertExpectations(t)
}

func TestHTTPCatalogProvider_Load_ServesFromCache(t *testing.T) {
	srv, hits := newCatalogServer(t, http.StatusOK, `{"question_tags": {}}`)
	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, catalogKey).Return(sampleDocument, nil).Once()

	provider := NewHTTPCatalogProvider(testCatalogConfig(srv.URL), mockCache, zap.NewNop())
	catalog, err := provider.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
	assert.Contains(t, catalog, domain.CatalogKeyCoding)
	mockCache.AssertExpectations(t)
}

func TestHTTPCatalogProvider_Load_CacheErrorFallsBackToFetch(t *testing.T) {
	srv, hits := newCatalogServer(t, http.StatusOK, sampleDocument)
	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, catalogKey).Return("", errors.New("connection refused")).Once()
	mockCache.On("Set", mock.Anything, catalogKey, sampleDocument, time.Hour).Return(errors.New("connection refused")).Once()

	provider := NewHTTPCatalogProvider(testCatalogConfig(srv.URL), mockCache, zap.NewNop())
	_, err := provider.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
	mockCache.AssertExpectations(t)
}

func TestHTTPCatalogProvider_Load_Unavailable(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `oops`},
		{"not found", http.StatusNotFound, ``},
		{"structure changed", http.StatusOK, `{"tags": {}}`},
		{"not json", http.StatusOK, `<html></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newCatalogServer(t, tt.status, tt.body)
			provider := NewHTTPCatalogProvider(testCatalogConfig(srv.URL), nil, zap.NewNop())

			catalog, err := provider.Load(context.Background())

			assert.Nil(t, catalog)
			assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domain.CodeCatalogUnavailable, domainErr.Code)
		})
	}
}

func TestHTTPCatalogProvider_Refresh(t *testing.T) {
	srv, hits := newCatalogServer(t, http.StatusOK, sampleDocument)
	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, catalogKey).Return("", domain.ErrCacheMiss).Twice()
	mockCache.On("Set", mock.Anything, catalogKey, sampleDocument, time.Hour).Return(nil).Twice()
	mockCache.On("Delete", mock.Anything, catalogKey).Return(nil).Once()

	provider := NewHTTPCatalogProvider(testCatalogConfig(srv.URL), mockCache, zap.NewNop())
	ctx := context.Background()

	_, err := provider.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, provider.Refresh(ctx))
	_, err = provider.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(hits))
	mockCache.AssertExpectations(t)
}

func TestFileCatalogProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "static_content.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o600))

	catalog, err := NewFileCatalogProvider(path, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog, 3)

	_, err = NewFileCatalogProvider(filepath.Join(dir, "missing.json"), zap.NewNop()).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}
