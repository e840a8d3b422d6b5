// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/secure-api/internal/config"
	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/internal/store"
	"github.com/MKhiriev/secure-api/internal/utils"
	"github.com/MKhiriev/secure-api/internal/validators"
	"github.com/MKhiriev/secure-api/models"
)

// demoPassword is the only password Login accepts, for any username.
const demoPassword = "password123"

// authService is the concrete implementation of AuthService.
type authService struct {
	// userMirror receives registration records; failures are logged only.
	userMirror store.UserMirror

	validator validators.Validator

	// tokenSignKey is the HS256 secret used to sign and verify tokens.
	tokenSignKey string

	// tokenDuration is the lifetime of an issued token.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService signing with cfg.TokenSignKey and
// issuing tokens valid for cfg.TokenDuration.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userMirror store.UserMirror, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userMirror:    userMirror,
		validator:     validator,
		tokenSignKey:  cfg.TokenSignKey,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Register builds a registration record from req.
//
// The id is derived from the username, so registering the same username twice
// yields two independent records with the same id. The record is mirrored to
// the side-store; a mirroring failure never fails the registration.
//
// Returns ErrInvalidDataProvided (wrapping the field errors) when req fails
// validation.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration data provided")
		return models.UserResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user := models.User{
		ID:           utils.ShortID(req.Username),
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: utils.SHA256Hex(req.Password),
		CreatedAt:    a.now().UTC(),
		IsActive:     true,
	}

	if err := a.userMirror.MirrorUser(ctx, user); err != nil {
		log.Warn().Err(err).Str("id", user.ID).Msg("registration not mirrored")
	}

	log.Info().Str("id", user.ID).Str("username", user.Username).Msg("user registered")

	return user.Response(), nil
}

// Login issues a token when req.Password equals the demo password.
//
// Returns:
//   - ErrInvalidDataProvided if the username is empty or the password is absent.
//   - ErrWrongCredentials if the password does not match.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if *req.Password != demoPassword {
		log.Info().Str("username", req.Username).Msg("wrong password")
		return models.TokenResponse{}, ErrWrongCredentials
	}

	token, err := a.CreateToken(ctx, map[string]any{"sub": req.Username})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("error creating token")
		return models.TokenResponse{}, err
	}

	return models.TokenResponse{
		AccessToken: token.String(),
		TokenType:   models.TokenTypeBearer,
		ExpiresIn:   int64(a.tokenDuration / time.Second),
	}, nil
}

// CreateToken signs a copy of claims with HS256.
func (a *authService) CreateToken(ctx context.Context, claims map[string]any) (models.Token, error) {
	token, err := utils.GenerateJWTToken(claims, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies tokenString. Any failure (signature, algorithm, expiry,
// malformed input or missing subject) is normalised to ErrUnauthorized.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, errors.Join(ErrUnauthorized, err)
	}

	return claims, nil
}
