// Package extract turns uploaded question files into domain.QuestionRecord batches.
package extract

import (
	"tag-validator/internal/domain"

	"go.uber.org/zap"
)

// Result is the output of one extraction. Warnings describe inputs that were
// skipped without failing the whole file.
type Result struct {
	Records  []domain.QuestionRecord
	Warnings []string
}

// Extractor reads spreadsheets and archives of question files.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an Extractor that logs rejected tags at debug level.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Batch concatenates results in argument order. Nil results are skipped.
func Batch(results ...*Result) *Result {
	out := &Result{}
	for _, r := range results {
		if r == nil {
			continue
		}
		out.Records = append(out.Records, r.Records...)
		out.Warnings = append(out.Warnings, r.Warnings...)
	}
	return out
}

// filterTags keeps the candidates the classifier accepts for questionID.
func (e *Extractor) filterTags(questionID, source string, candidates []string) []string {
	kept := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if domain.IsValidTag(c, questionID) {
			kept = append(kept, c)
			continue
		}
		e.logger.Debug("Discarding non-tag value",
			zap.String("question_id", questionID),
			zap.String("source", source),
			zap.String("value", c),
		)
	}
	return kept
}
