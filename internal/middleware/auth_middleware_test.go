package middleware_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"sat-prep/internal/dto"
	"sat-prep/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ManualMockAuthService is a func-field mock of service.AuthService
type ManualMockAuthService struct {
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *ManualMockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	return nil, errors.New("ValidateJWTFunc not set on mock")
}

func (m *ManualMockAuthService) GenerateAccessToken(userID string, ttl time.Duration) (string, error) {
	panic("not implemented in mock")
}

func claimsFor(userID, tokenType string) *dto.AuthClaims {
	return &dto.AuthClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func mockWithTokens() *ManualMockAuthService {
	return &ManualMockAuthService{
		ValidateJWTFunc: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
			switch tokenString {
			case "valid_access_token":
				return claimsFor("user123", "access"), nil
			case "valid_refresh_token":
				return claimsFor("user456", "refresh"), nil
			default:
				return nil, errors.New("invalid token")
			}
		},
	}
}

func TestOptionalAuth(t *testing.T) {
	tests := []struct {
		name                string
		authHeader          string
		expectedUserIDLocal string
	}{
		{name: "No Auth Header"},
		{name: "Valid Access Token", authHeader: "Bearer valid_access_token", expectedUserIDLocal: "user123"},
		{name: "Invalid Token", authHeader: "Bearer invalid_token"},
		{name: "Refresh Token instead of Access", authHeader: "Bearer valid_refresh_token"},
		{name: "Malformed Auth Header - No Bearer", authHeader: "Basic some_token"},
		{name: "Malformed Auth Header - Bearer No Token", authHeader: "Bearer "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()

			nextHandlerCalled := false
			var userID string
			app.Get("/test_optional_auth", middleware.OptionalAuth(mockWithTokens()), func(c *fiber.Ctx) error {
				nextHandlerCalled = true
				userID = middleware.UserIDFromCtx(c)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/test_optional_auth", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.True(t, nextHandlerCalled, "Next handler was not called")
			assert.Equal(t, tc.expectedUserIDLocal, userID)
		})
	}
}

func TestProtected(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{name: "No Auth Header", expectedStatus: fiber.StatusUnauthorized, expectedBody: "MISSING_AUTH_HEADER"},
		{name: "Wrong scheme", authHeader: "Basic abc", expectedStatus: fiber.StatusUnauthorized, expectedBody: "INVALID_AUTH_SCHEME"},
		{name: "Bearer without token", authHeader: "Bearer ", expectedStatus: fiber.StatusUnauthorized},
		{name: "Invalid token", authHeader: "Bearer nope", expectedStatus: fiber.StatusUnauthorized, expectedBody: "INVALID_TOKEN"},
		{name: "Refresh token", authHeader: "Bearer valid_refresh_token", expectedStatus: fiber.StatusForbidden, expectedBody: "INVALID_TOKEN_TYPE"},
		{name: "Access token", authHeader: "Bearer valid_access_token", expectedStatus: fiber.StatusOK, expectedBody: "user123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/protected", middleware.Protected(mockWithTokens()), func(c *fiber.Ctx) error {
				return c.SendString(middleware.UserIDFromCtx(c))
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), tc.expectedBody)
		})
	}
}
