// Package server provides the HTTP REST API for the recruiting backend.
package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/hireflow/internal/config"
	"github.com/jonathan/hireflow/internal/pipeline"
	"github.com/jonathan/hireflow/internal/server/middleware"
)

// Token types carried in claims. An access token cannot be used where a
// refresh token is required and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims represents JWT claims with the authenticated principal.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	TokenType string    `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTService provides JWT token generation and validation functionality.
type JWTService struct {
	config *config.JWTConfig
}

// NewJWTService creates a new JWT service with the given configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateAccessToken generates a short-lived access token.
func (s *JWTService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	expiry := time.Duration(s.config.AccessExpiryMins) * time.Minute
	return s.generate(userID, email, TokenTypeAccess, expiry)
}

// GenerateRefreshToken generates a long-lived refresh token.
func (s *JWTService) GenerateRefreshToken(userID uuid.UUID, email string) (string, error) {
	expiry := time.Duration(s.config.RefreshExpiryHours) * time.Hour
	return s.generate(userID, email, TokenTypeRefresh, expiry)
}

func (s *JWTService) generate(userID uuid.UUID, email, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// AsTokenValidator adapts the service for the auth middleware.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return &accessValidator{service: s}
}

type accessValidator struct {
	service *JWTService
}

func (v *accessValidator) ValidateAccessToken(tokenString string) (pipeline.Principal, error) {
	claims, err := v.service.ValidateToken(tokenString, TokenTypeAccess)
	if err != nil {
		return pipeline.Principal{}, err
	}
	return pipeline.Principal{ID: claims.UserID, Email: claims.Email}, nil
}

// ValidateToken validates a JWT token, requires the expected token type,
// and returns the claims.
func (s *JWTService) ValidateToken(tokenString, expectedType string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("token is not a %s token", expectedType)
	}

	return claims, nil
}
