package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tag-validator/internal/cache"
	"tag-validator/internal/domain"
	"tag-validator/internal/logger"

	"go.uber.org/zap"
)

// reportCacheServiceImpl implements domain.ReportCache using a generic cache.
type reportCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewReportCacheService creates a report cache backed by cache. When cache is
// nil the returned service keeps nothing: Put fails with
// domain.ErrCacheUnavailable and every Get is a miss.
func NewReportCacheService(cache domain.Cache, ttl time.Duration) domain.ReportCache {
	if cache == nil {
		logger.Get().Warn("ReportCacheService initialized with nil cache. Service will be no-op.")
		return &noopReportCacheService{}
	}
	return &reportCacheServiceImpl{
		cache: cache,
		ttl:   ttl,
	}
}

func (s *reportCacheServiceImpl) generateKey(runID string) string {
	return cache.GenerateCacheKey("validation", "report", runID)
}

// Put stores a finished report under its run ID.
func (s *reportCacheServiceImpl) Put(ctx context.Context, report *domain.ValidationReport) error {
	if report == nil || report.RunID == "" {
		return domain.NewInvalidInputError("cannot cache a report without run ID")
	}

	key := s.generateKey(report.RunID)
	data, err := json.Marshal(report)
	if err != nil {
		logger.Get().Error("Failed to marshal report for caching", zap.Error(err), zap.String("run_id", report.RunID))
		return domain.NewInternalError("failed to marshal report for caching", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to cache report", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to set report to cache for key %s", key), err)
	}
	logger.Get().Debug("Successfully cached report", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get returns the report of a previous run.
func (s *reportCacheServiceImpl) Get(ctx context.Context, runID string) (*domain.ValidationReport, error) {
	key := s.generateKey(runID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Report cache miss", zap.String("key", key))
			return nil, domain.NewReportNotFoundError(runID)
		}
		logger.Get().Error("Failed to get report from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get report from cache for key %s", key), err)
	}
	if data == "" {
		return nil, domain.NewReportNotFoundError(runID)
	}

	var report domain.ValidationReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		logger.Get().Error("Failed to unmarshal report from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal report from cache for key %s", key), err)
	}
	return &report, nil
}

// noopReportCacheService is used when no cache is configured.
type noopReportCacheService struct{}

func (s *noopReportCacheService) Put(ctx context.Context, report *domain.ValidationReport) error {
	return domain.ErrCacheUnavailable
}

func (s *noopReportCacheService) Get(ctx context.Context, runID string) (*domain.ValidationReport, error) {
	return nil, domain.NewReportNotFoundError(runID)
}
