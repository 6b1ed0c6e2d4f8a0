package dto

import (
	"sort"
	"time"

	"tag-validator/internal/domain"
)

// ValidationRequest carries the form fields of a validation upload.
// Optional tag fields hold raw names; they are formatted server-side.
// @Description Form fields accepted by POST /api/validations
type ValidationRequest struct {
	Course    string `form:"course" validate:"max=100"`
	Module    string `form:"module" validate:"max=100"`
	Unit      string `form:"unit" validate:"max=100"`
	ExtraUnit string `form:"extra_unit" validate:"max=100"`
	Company   string `form:"company" validate:"max=100"`
	SetSize   int    `form:"set_size" validate:"gte=0,lte=1000"`
	// Debug includes passing records in the response.
	Debug bool `form:"debug"`
}

// OptionalTags converts the raw names into an OptionalTagConfig.
func (r ValidationRequest) OptionalTags() domain.OptionalTagConfig {
	return domain.OptionalTagConfigFromNames(r.Course, r.Module, []string{r.Unit, r.ExtraUnit}, r.Company)
}

// IssueResponse is one finding on a record.
type IssueResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// RecordResultResponse is the outcome for one question.
type RecordResultResponse struct {
	QuestionID  string          `json:"question_id"`
	ModuleType  string          `json:"module_type"`
	Source      string          `json:"source,omitempty"`
	CurrentTags []string        `json:"current_tags"`
	Issues      []IssueResponse `json:"issues"`
	Passed      bool            `json:"passed"`
}

// ValidationReportResponse summarises a run
// @Description Validation run summary and per-question findings
type ValidationReportResponse struct {
	RunID        string                 `json:"run_id"`
	GeneratedAt  time.Time              `json:"generated_at"`
	Total        int                    `json:"total"`
	Passed       int                    `json:"passed"`
	Failed       int                    `json:"failed"`
	SuccessRate  float64                `json:"success_rate"`
	OptionalTags OptionalTagsResponse   `json:"optional_tags"`
	Results      []RecordResultResponse `json:"results"`
	Warnings     []string               `json:"warnings,omitempty"`
	ReportURL    string                 `json:"report_url,omitempty"`
}

// OptionalTagsResponse echoes the canonical optional tags a run checked for.
type OptionalTagsResponse struct {
	Course  string   `json:"course,omitempty"`
	Module  string   `json:"module,omitempty"`
	Units   []string `json:"units,omitempty"`
	Company string   `json:"company,omitempty"`
}

// NewValidationReportResponse maps a report. Passing records are dropped
// unless includePassed is set; totals always cover the whole batch.
func NewValidationReportResponse(report *domain.ValidationReport, optional domain.OptionalTagConfig, includePassed bool) ValidationReportResponse {
	resp := ValidationReportResponse{
		RunID:       report.RunID,
		GeneratedAt: report.GeneratedAt,
		Total:       report.Total,
		Passed:      report.Passed,
		Failed:      report.Failed,
		SuccessRate: report.SuccessRate,
		OptionalTags: OptionalTagsResponse{
			Course:  optional.CourseTag,
			Module:  optional.ModuleTag,
			Units:   optional.UnitTags,
			Company: optional.CompanyTag,
		},
		Results:  make([]RecordResultResponse, 0, len(report.Results)),
		Warnings: report.Warnings,
	}
	for _, r := range report.Results {
		if r.Passed && !includePassed {
			continue
		}
		issues := make([]IssueResponse, len(r.Issues))
		for i, issue := range r.Issues {
			issues[i] = IssueResponse{Kind: string(issue.Kind), Message: issue.Message}
		}
		resp.Results = append(resp.Results, RecordResultResponse{
			QuestionID:  r.QuestionID,
			ModuleType:  string(r.ModuleType),
			Source:      r.Source,
			CurrentTags: r.CurrentTags,
			Issues:      issues,
			Passed:      r.Passed,
		})
	}
	return resp
}

// CatalogModuleResponse describes one catalog key.
type CatalogModuleResponse struct {
	Key       string   `json:"key"`
	Topics    []string `json:"topics"`
	SubTopics []string `json:"sub_topics"`
}

// CatalogResponse lists the reference catalog
// @Description Reference taxonomy keyed by catalog module
type CatalogResponse struct {
	Modules []CatalogModuleResponse `json:"modules"`
}

// NewCatalogResponse lists catalog keys with their tags, all sorted.
func NewCatalogResponse(catalog domain.ReferenceCatalog) CatalogResponse {
	resp := CatalogResponse{Modules: make([]CatalogModuleResponse, 0, len(catalog))}
	for key, sets := range catalog {
		resp.Modules = append(resp.Modules, CatalogModuleResponse{
			Key:       key,
			Topics:    sortedKeys(sets.Topics),
			SubTopics: sortedKeys(sets.SubTopics),
		})
	}
	sort.Slice(resp.Modules, func(i, j int) bool { return resp.Modules[i].Key < resp.Modules[j].Key })
	return resp
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FormatTagRequest asks for the canonical form of a free-text name.
type FormatTagRequest struct {
	Input  string `json:"input" validate:"required,max=200"`
	Prefix string `json:"prefix" validate:"required,oneof=COURSE_ MODULE_ UNIT_ COMPANY_ TOPIC_ SUB_TOPIC_ SOURCE_"`
}

// FormatTagResponse carries the formatted tag; Tag is empty when nothing
// usable remained.
type FormatTagResponse struct {
	Tag string `json:"tag"`
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
