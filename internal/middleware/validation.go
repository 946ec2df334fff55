package middleware

import (
	"sat-prep/internal/domain"
	"sat-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const validatedRequestKey = "validated_request"

// ValidationMiddleware parses and validates request DTOs before the handler runs
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// Validate checks an already parsed request
func (vm *ValidationMiddleware) Validate(req interface{}) error {
	if errs := vm.validator.Struct(req); len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateQuery parses the query string into T and stores it for the handler
func ValidateQuery[T any](vm *ValidationMiddleware) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.QueryParser(req); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("query", string(c.Request().URI().QueryString()))}
		}
		if err := vm.Validate(req); err != nil {
			return err
		}
		c.Locals(validatedRequestKey, req)
		return c.Next()
	}
}

// ValidateBody parses the JSON body into T and stores it for the handler
func ValidateBody[T any](vm *ValidationMiddleware) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.BodyParser(req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}
		if err := vm.Validate(req); err != nil {
			return err
		}
		c.Locals(validatedRequestKey, req)
		return c.Next()
	}
}

// ValidatedRequest returns the request stored by ValidateQuery or ValidateBody
func ValidatedRequest[T any](c *fiber.Ctx) (*T, bool) {
	req, ok := c.Locals(validatedRequestKey).(*T)
	return req, ok
}
