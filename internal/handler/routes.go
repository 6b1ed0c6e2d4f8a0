package handler

import (
	"tag-validator/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// RegisterRoutes mounts the API on app.
func RegisterRoutes(app *fiber.App, vh *ValidationHandler, hh *HealthHandler, vm *middleware.ValidationMiddleware) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", hh.Check)

	api := app.Group("/api")
	api.Post("/validations", vh.CreateValidation)
	api.Get("/validations/:runID/report.csv", vm.ValidateRunID(), vh.DownloadReport)
	api.Get("/catalog", vh.GetCatalog)
	api.Post("/tags/format", vh.FormatTag)
}
