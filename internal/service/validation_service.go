package service

import (
	"context"
	"fmt"
	"time"

	"tag-validator/internal/domain"
	"tag-validator/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// validationService implements the domain.ValidationService interface.
type validationService struct {
	catalog domain.CatalogProvider
	policy  domain.RulePolicy
	workers int
	logger  *zap.Logger
	now     func() time.Time
}

// NewValidationService creates a new instance of validationService.
// workers bounds how many records are validated concurrently.
func NewValidationService(
	catalog domain.CatalogProvider,
	policy domain.RulePolicy,
	workers int,
	logger *zap.Logger,
) domain.ValidationService {
	if workers < 1 {
		workers = 1
	}
	return &validationService{
		catalog: catalog,
		policy:  policy,
		workers: workers,
		logger:  logger,
		now:     time.Now,
	}
}

// Run validates every record of the ordered batch. The catalog is loaded
// first; if that fails nothing is validated.
func (s *validationService) Run(ctx context.Context, batch []domain.QuestionRecord, opts domain.ValidationOptions) (*domain.ValidationReport, error) {
	if opts.SetSize < 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("set size must not be negative, got %d", opts.SetSize))
	}
	if err := opts.Optional.Validate(); err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		s.logger.Error("Refusing to validate without reference catalog", zap.Error(err))
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, domain.NewCatalogUnavailableError(fmt.Errorf("catalog has no modules"))
	}

	runID := util.NewULID()
	s.logger.Info("Starting tag validation run",
		zap.String("run_id", runID),
		zap.Int("records", len(batch)),
		zap.Int("set_size", opts.SetSize),
		zap.Int("workers", s.workers),
	)

	results := make([]domain.RecordResult, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range batch {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.validateAt(batch, i, opts, catalog)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &domain.ValidationReport{
		RunID:       runID,
		GeneratedAt: s.now().UTC(),
		Results:     results,
	}
	summarize(report)

	s.logger.Info("Tag validation run completed",
		zap.String("run_id", runID),
		zap.Int("total", report.Total),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
		zap.Float64("success_rate", report.SuccessRate),
	)
	return report, nil
}

func (s *validationService) validateAt(batch []domain.QuestionRecord, i int, opts domain.ValidationOptions, catalog domain.ReferenceCatalog) domain.RecordResult {
	record := batch[i]

	var seq *domain.SequenceContext
	if sc, ok := domain.ResolveSequence(batch, i, opts.SetSize); ok {
		seq = &sc
	}

	issues := domain.ValidateQuestionTags(record, opts.Optional, catalog.Lookup(record.ModuleType), seq, s.policy)
	if issues == nil {
		issues = []domain.Issue{}
	}

	if len(issues) > 0 {
		s.logger.Debug("Record has tag issues",
			zap.String("question_id", record.QuestionID),
			zap.String("module_type", string(record.ModuleType)),
			zap.Int("issues", len(issues)),
		)
	}

	return domain.RecordResult{
		QuestionID:  record.QuestionID,
		ModuleType:  record.ModuleType,
		Source:      record.Source,
		CurrentTags: record.SortedTags(),
		Issues:      issues,
		Passed:      len(issues) == 0,
	}
}

func summarize(report *domain.ValidationReport) {
	report.Total = len(report.Results)
	report.Failed = 0
	for _, r := range report.Results {
		if !r.Passed {
			report.Failed++
		}
	}
	report.Passed = report.Total - report.Failed
	report.SuccessRate = 0
	if report.Total > 0 {
		report.SuccessRate = float64(report.Passed) / float64(report.Total) * 100
	}
}
