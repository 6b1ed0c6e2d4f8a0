package middleware

import (
	"tag-validator/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	if v == nil {
		v = validation.NewValidator()
	}
	return &ValidationMiddleware{validator: v}
}

// ValidateRunID checks the runID path parameter and stores it for the handler.
func (vm *ValidationMiddleware) ValidateRunID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		runID := c.Params("runID")
		if errs := vm.validator.ValidateRunID(runID); len(errs) > 0 {
			return errs // handled by ErrorHandler
		}
		c.Locals("validated_run_id", runID)
		return c.Next()
	}
}
