package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"tag-validator/internal/domain"
)

// ReportCSVHeader is the column layout of the downloadable issues report.
var ReportCSVHeader = []string{"Question ID", "Module Type", "Issues Found", "Current Tags"}

// WriteReportCSV writes one row per record. With onlyFailures set, passing
// records are left out.
func WriteReportCSV(w io.Writer, report *domain.ValidationReport, onlyFailures bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReportCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range report.Results {
		if onlyFailures && r.Passed {
			continue
		}
		messages := make([]string, len(r.Issues))
		for i, issue := range r.Issues {
			messages[i] = issue.String()
		}
		row := []string{
			r.QuestionID,
			string(r.ModuleType),
			strings.Join(messages, ", "),
			strings.Join(r.CurrentTags, ", "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", r.QuestionID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
