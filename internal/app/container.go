// Package app wires configuration, adapters and services for the binaries.
package app

import (
	"context"

	"tag-validator/internal/adapter"
	"tag-validator/internal/adapter/catalog"
	"tag-validator/internal/cache"
	"tag-validator/internal/config"
	"tag-validator/internal/domain"
	"tag-validator/internal/extract"
	"tag-validator/internal/service"
	"tag-validator/internal/validation"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Options adjust wiring for a single process.
type Options struct {
	// CatalogFile replaces the remote catalog with a local JSON document.
	// It takes precedence over catalog.file from the config.
	CatalogFile string
}

// Container holds the wired dependencies.
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Cache      domain.Cache
	Catalog    domain.CatalogProvider
	Validation domain.ValidationService
	Reports    domain.ReportCache
	Extractor  *extract.Extractor
	Validator  *validation.Validator

	redis *redis.Client
}

// New builds a Container. Redis is optional: when no address is configured or
// the server cannot be reached, caching is disabled and a warning is logged.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts Options) *Container {
	c := &Container{Config: cfg, Logger: logger}

	if cfg.Redis.Address != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		} else {
			logger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
			c.redis = client
			c.Cache = adapter.NewRedisCacheAdapter(client)
		}
	}

	catalogFile := opts.CatalogFile
	if catalogFile == "" {
		catalogFile = cfg.Catalog.File
	}
	if catalogFile != "" {
		c.Catalog = catalog.NewFileCatalogProvider(catalogFile, logger)
	} else {
		c.Catalog = catalog.NewHTTPCatalogProvider(cfg.Catalog, c.Cache, logger)
	}

	policy := domain.RulePolicyFromNames(cfg.Validation.PublicModuleTypes, cfg.Validation.CodingModuleTypes)
	c.Validation = service.NewValidationService(c.Catalog, policy, cfg.Validation.Workers, logger)
	c.Reports = service.NewReportCacheService(c.Cache, cfg.Report.CacheTTL)
	c.Extractor = extract.NewExtractor(logger)
	c.Validator = validation.NewValidator()
	return c
}

// Close releases the redis connection, if any.
func (c *Container) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
