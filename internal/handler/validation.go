package handler

import (
	"bytes"
	"errors"
	"fmt"

	"tag-validator/internal/domain"
	"tag-validator/internal/dto"
	"tag-validator/internal/extract"
	"tag-validator/internal/logger"
	"tag-validator/internal/service"
	"tag-validator/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ValidationHandler handles tag validation HTTP requests
type ValidationHandler struct {
	service   domain.ValidationService
	reports   domain.ReportCache
	catalog   domain.CatalogProvider
	extractor *extract.Extractor
	validator *validation.Validator
}

// NewValidationHandler creates a new ValidationHandler instance
func NewValidationHandler(
	svc domain.ValidationService,
	reports domain.ReportCache,
	catalog domain.CatalogProvider,
	extractor *extract.Extractor,
	validator *validation.Validator,
) *ValidationHandler {
	return &ValidationHandler{
		service:   svc,
		reports:   reports,
		catalog:   catalog,
		extractor: extractor,
		validator: validator,
	}
}

// CreateValidation godoc
// @Summary Validate question tags
// @Description Extracts questions from an uploaded spreadsheet and/or zip archive and checks their tags against the reference catalog
// @Tags validations
// @Accept multipart/form-data
// @Produce json
// @Param sheet formData file false "Questions spreadsheet (.xlsx or .csv)"
// @Param archive formData file false "Zip archive of question JSON files"
// @Param course formData string false "Course name"
// @Param module formData string false "Module name"
// @Param unit formData string false "Unit name"
// @Param extra_unit formData string false "Second accepted unit name"
// @Param company formData string false "Company name"
// @Param set_size formData int false "Questions per set for QUESTION_/SET_ numbering (0 disables)"
// @Param debug formData bool false "Include passing questions in results"
// @Success 200 {object} dto.ValidationReportResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /validations [post]
func (h *ValidationHandler) CreateValidation(c *fiber.Ctx) error {
	var req dto.ValidationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid form data")
	}
	if errs := h.validator.ValidateStruct(req); len(errs) > 0 {
		return errs
	}

	sheet, archive, err := h.extractUploads(c)
	if err != nil {
		return err
	}
	batch := extract.Batch(sheet, archive)

	optional := req.OptionalTags()
	report, err := h.service.Run(c.UserContext(), batch.Records, domain.ValidationOptions{
		Optional: optional,
		SetSize:  req.SetSize,
	})
	if err != nil {
		return err
	}
	report.Warnings = batch.Warnings

	resp := dto.NewValidationReportResponse(report, optional, req.Debug)
	if err := h.reports.Put(c.UserContext(), report); err != nil {
		if errors.Is(err, domain.ErrCacheUnavailable) {
			logger.Get().Debug("No report cache configured; CSV download unavailable", zap.String("run_id", report.RunID))
		} else {
			logger.Get().Warn("Report not cached; CSV download unavailable", zap.String("run_id", report.RunID), zap.Error(err))
		}
	} else {
		resp.ReportURL = fmt.Sprintf("/api/validations/%s/report.csv", report.RunID)
	}

	return c.JSON(resp)
}

// extractUploads reads whichever of the two upload fields are present.
func (h *ValidationHandler) extractUploads(c *fiber.Ctx) (*extract.Result, *extract.Result, error) {
	sheetHeader, sheetErr := c.FormFile("sheet")
	archiveHeader, archiveErr := c.FormFile("archive")
	if sheetErr != nil && archiveErr != nil {
		return nil, nil, domain.NewInvalidInputError("upload a questions spreadsheet, a zip archive, or both").
			WithContext("fields", "sheet,archive")
	}

	var sheet, archive *extract.Result
	if sheetErr == nil {
		f, err := sheetHeader.Open()
		if err != nil {
			return nil, nil, domain.NewExtractionError(sheetHeader.Filename, err)
		}
		defer f.Close()
		if sheet, err = h.extractor.Spreadsheet(sheetHeader.Filename, f); err != nil {
			return nil, nil, err
		}
	}
	if archiveErr == nil {
		f, err := archiveHeader.Open()
		if err != nil {
			return nil, nil, domain.NewExtractionError(archiveHeader.Filename, err)
		}
		defer f.Close()
		if archive, err = h.extractor.Archive(archiveHeader.Filename, f, archiveHeader.Size); err != nil {
			return nil, nil, err
		}
	}
	return sheet, archive, nil
}

// DownloadReport godoc
// @Summary Download a validation report
// @Description Returns the questions with issues from a previous run as CSV
// @Tags validations
// @Produce text/csv
// @Param runID path string true "Run ID"
// @Param all query bool false "Include passing questions"
// @Success 200 {string} string "CSV report"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /validations/{runID}/report.csv [get]
func (h *ValidationHandler) DownloadReport(c *fiber.Ctx) error {
	runID, _ := c.Locals("validated_run_id").(string)
	if runID == "" {
		runID = c.Params("runID")
	}

	report, err := h.reports.Get(c.UserContext(), runID)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := service.WriteReportCSV(&buf, report, !c.QueryBool("all", false)); err != nil {
		return domain.NewInternalError("failed to render report", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="tag_validation_issues_%s.csv"`, runID))
	return c.Send(buf.Bytes())
}

// GetCatalog godoc
// @Summary Get the reference catalog
// @Description Lists the allowed TOPIC_ and SUB_TOPIC_ tags per catalog module
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /catalog [get]
func (h *ValidationHandler) GetCatalog(c *fiber.Ctx) error {
	catalog, err := h.catalog.Load(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCatalogResponse(catalog))
}

// FormatTag godoc
// @Summary Format a tag name
// @Description Converts free text into a canonical PREFIX_NAME tag
// @Tags tags
// @Accept json
// @Produce json
// @Param request body dto.FormatTagRequest true "Name and prefix"
// @Success 200 {object} dto.FormatTagResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /tags/format [post]
func (h *ValidationHandler) FormatTag(c *fiber.Ctx) error {
	var req dto.FormatTagRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateStruct(req); len(errs) > 0 {
		return errs
	}
	return c.JSON(dto.FormatTagResponse{Tag: domain.FormatTagName(req.Input, req.Prefix)})
}
