package middleware_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"sat-prep/internal/domain"
	"sat-prep/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appReturning(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error { return err })
	return app
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.NewInvalidSectionError("science"), fiber.StatusBadRequest, "INVALID_SECTION"},
		{domain.NewInvalidInputError("bad body"), fiber.StatusBadRequest, "INVALID_INPUT"},
		{domain.NewQuestionNotFoundError(domain.SectionMath, "x"), fiber.StatusNotFound, "QUESTION_NOT_FOUND"},
		{domain.NewSessionNotFoundError("s1"), fiber.StatusNotFound, "SESSION_NOT_FOUND"},
		{domain.NewNotFoundError("gone"), fiber.StatusNotFound, "NOT_FOUND"},
		{domain.NewUnauthorizedError("login required"), fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.NewLLMServiceError(errors.New("timeout")), fiber.StatusServiceUnavailable, "LLM_SERVICE_ERROR"},
		{domain.NewInternalError("db", errors.New("down")), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
		{fmt.Errorf("wrapped: %w", domain.NewSessionNotFoundError("s2")), fiber.StatusNotFound, "SESSION_NOT_FOUND"},
		{fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), fiber.StatusMethodNotAllowed, "HTTP_ERROR"},
		{errors.New("mystery"), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			resp, err := appReturning(tc.err).Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body middleware.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.status, body.Status)
		})
	}
}

func TestErrorHandler_Details(t *testing.T) {
	resp, err := appReturning(domain.NewInvalidSectionError("science")).Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "science", body.Details["section"])
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	verrs := domain.ValidationErrors{
		domain.NewMissingFieldError("message"),
		domain.NewOutOfRangeError("count", -1, 0, 100),
	}
	resp, err := appReturning(verrs).Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "message", body.Errors[0].Field)
	assert.Equal(t, domain.CodeOutOfRange, body.Errors[1].Code)
}
