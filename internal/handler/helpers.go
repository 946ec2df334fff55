package handler

import (
	"sat-prep/internal/domain"
	"sat-prep/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// validated fetches the request parsed by the route's validation middleware
func validated[T any](c *fiber.Ctx) (*T, error) {
	req, ok := middleware.ValidatedRequest[T](c)
	if !ok {
		return nil, domain.NewInternalError("request was not validated", nil)
	}
	return req, nil
}

// requireUser returns the authenticated user id set by middleware.Protected
func requireUser(c *fiber.Ctx) (string, error) {
	userID := middleware.UserIDFromCtx(c)
	if userID == "" {
		return "", domain.NewUnauthorizedError("Authentication required")
	}
	return userID, nil
}
