package domain

import (
	"context"
	"time"
)

// CatalogProvider loads the reference tag catalog. Implementations may cache,
// but Load must fail rather than return a substitute catalog.
type CatalogProvider interface {
	Load(ctx context.Context) (ReferenceCatalog, error)
}

// CatalogRefresher is implemented by providers that keep a cached copy of the
// catalog. Refresh discards it so the next Load fetches a fresh document.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// ValidationOptions configures one validation run.
type ValidationOptions struct {
	Optional OptionalTagConfig
	// SetSize is the group size for QUESTION_/SET_ numbering; 0 disables it.
	SetSize int
}

// RecordResult is the outcome for one record of a batch.
type RecordResult struct {
	QuestionID  string     `json:"question_id"`
	ModuleType  ModuleType `json:"module_type"`
	Source      string     `json:"source,omitempty"`
	CurrentTags []string   `json:"current_tags"`
	Issues      []Issue    `json:"issues"`
	Passed      bool       `json:"passed"`
}

// ValidationReport aggregates a whole run.
type ValidationReport struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Total       int            `json:"total"`
	Passed      int            `json:"passed"`
	Failed      int            `json:"failed"`
	SuccessRate float64        `json:"success_rate"`
	Results     []RecordResult `json:"results"`
	Warnings    []string       `json:"warnings,omitempty"`
}

// Failures returns only the records that have issues.
func (r *ValidationReport) Failures() []RecordResult {
	var out []RecordResult
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// ValidationService runs the rule engine over an ordered batch.
type ValidationService interface {
	Run(ctx context.Context, batch []QuestionRecord, opts ValidationOptions) (*ValidationReport, error)
}

// ReportCache keeps finished reports around long enough to be downloaded.
type ReportCache interface {
	Put(ctx context.Context, report *ValidationReport) error
	Get(ctx context.Context, runID string) (*ValidationReport, error)
}
