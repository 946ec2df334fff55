package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sat-prep/internal/config"
	"sat-prep/internal/dto"
	"sat-prep/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const TokenTypeAccess = "access"

var (
	ErrInvalidJWTToken  = errors.New("invalid jwt token")
	ErrMissingJWTSecret = errors.New("jwt secret is not configured")
)

// AuthService verifies bearer tokens issued by the account service. Issuing
// is only used for development tokens.
type AuthService interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	GenerateAccessToken(userID string, ttl time.Duration) (string, error)
}

type authServiceImpl struct {
	cfg config.AuthConfig
}

func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	return &authServiceImpl{cfg: cfg}, nil
}

func (s *authServiceImpl) GenerateAccessToken(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	if ttl <= 0 {
		ttl = s.cfg.AccessTokenTTL
	}
	now := time.Now()
	claims := dto.AuthClaims{
		UserID:    userID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}

	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		msg := "JWT validation failed"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "JWT token expired"
		}
		logger.Get().Warn(msg,
			zap.Error(err),
			zap.String("token_snippet", tokenString[:min(len(tokenString), 20)]+"..."))
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidJWTToken
	}

	// Tokens from the account service may only carry the subject
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidJWTToken)
	}
	if claims.TokenType == "" {
		claims.TokenType = TokenTypeAccess
	}
	return claims, nil
}
