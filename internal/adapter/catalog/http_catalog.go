package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tag-validator/internal/cache"
	"tag-validator/internal/config"
	"tag-validator/internal/domain"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// HTTPCatalogProvider fetches the taxonomy document over HTTP. The parsed
// catalog is kept for the life of the process; the raw document is also
// stored in the shared cache (when configured) so restarts skip the download.
type HTTPCatalogProvider struct {
	client *resty.Client
	url    string
	cache  domain.Cache
	ttl    time.Duration
	logger *zap.Logger

	mu     sync.Mutex
	loaded domain.ReferenceCatalog
}

// NewHTTPCatalogProvider creates a provider for cfg.URL. cacheAdapter may be nil.
func NewHTTPCatalogProvider(cfg config.CatalogConfig, cacheAdapter domain.Cache, logger *zap.Logger) *HTTPCatalogProvider {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Accept", "application/json")

	return &HTTPCatalogProvider{
		client: client,
		url:    cfg.URL,
		cache:  cacheAdapter,
		ttl:    cfg.CacheTTL,
		logger: logger,
	}
}

var (
	_ domain.CatalogProvider  = (*HTTPCatalogProvider)(nil)
	_ domain.CatalogRefresher = (*HTTPCatalogProvider)(nil)
)

func (p *HTTPCatalogProvider) cacheKey() string {
	return cache.GenerateCacheKey("catalog", "document", "latest")
}

// Load returns the reference catalog, fetching it on first use.
func (p *HTTPCatalogProvider) Load(ctx context.Context) (domain.ReferenceCatalog, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded != nil {
		return p.loaded, nil
	}

	if catalog, ok := p.fromCache(ctx); ok {
		p.loaded = catalog
		return catalog, nil
	}

	body, err := p.fetch(ctx)
	if err != nil {
		return nil, domain.NewCatalogUnavailableError(err)
	}
	catalog, err := Parse(body, p.logger)
	if err != nil {
		p.logger.Error("Failed to parse reference catalog", zap.String("url", p.url), zap.Error(err))
		return nil, domain.NewCatalogUnavailableError(err)
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, p.cacheKey(), string(body), p.ttl); err != nil {
			p.logger.Warn("Failed to cache reference catalog", zap.Error(err))
		}
	}

	p.logger.Info("Reference catalog loaded", zap.String("url", p.url), zap.Int("modules", len(catalog)))
	p.loaded = catalog
	return catalog, nil
}

// Refresh drops every cached copy so the next Load downloads the document again.
func (p *HTTPCatalogProvider) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.loaded = nil
	p.mu.Unlock()

	if p.cache == nil {
		return nil
	}
	return p.cache.Delete(ctx, p.cacheKey())
}

func (p *HTTPCatalogProvider) fromCache(ctx context.Context) (domain.ReferenceCatalog, bool) {
	if p.cache == nil {
		return nil, false
	}
	raw, err := p.cache.Get(ctx, p.cacheKey())
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			p.logger.Warn("Failed to read cached reference catalog", zap.Error(err))
		}
		return nil, false
	}
	catalog, err := Parse([]byte(raw), p.logger)
	if err != nil {
		p.logger.Warn("Cached reference catalog is unusable, refetching", zap.Error(err))
		return nil, false
	}
	p.logger.Debug("Reference catalog served from cache", zap.Int("modules", len(catalog)))
	return catalog, true
}

func (p *HTTPCatalogProvider) fetch(ctx context.Context) ([]byte, error) {
	resp, err := p.client.R().SetContext(ctx).Get(p.url)
	if err != nil {
		p.logger.Error("Network error fetching reference catalog", zap.String("url", p.url), zap.Error(err))
		return nil, fmt.Errorf("fetch %s: %w", p.url, err)
	}
	if resp.IsError() {
		p.logger.Error("Reference catalog request failed",
			zap.String("url", p.url),
			zap.Int("status", resp.StatusCode()),
		)
		return nil, fmt.Errorf("fetch %s: unexpected status %d", p.url, resp.StatusCode())
	}
	return resp.Body(), nil
}
