// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/MKhiriev/secure-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// registeredClaimNames lists the claims that are owned by the token layer and
// never reported back in [models.Claims.Extra].
var registeredClaimNames = []string{"sub", "exp", "iat", "nbf", "iss", "aud", "jti"}

// GenerateJWTToken signs an HS256 JWT carrying a copy of claims plus
// "exp" = now + tokenDuration and "iat" = now. Caller-supplied "exp" and
// "iat" values are overwritten; claims itself is not modified.
//
// Returns an error if tokenDuration is not positive or signKey is empty.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(map[string]any{"sub": "alice"}, 30*time.Minute, "secret")
func GenerateJWTToken(claims map[string]any, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)

	mapClaims := make(jwt.MapClaims, len(claims)+2)
	maps.Copy(mapClaims, claims)
	mapClaims["exp"] = jwt.NewNumericDate(expiresAt)
	mapClaims["iat"] = jwt.NewNumericDate(now)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, ExpiresAt: expiresAt}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// Validation includes:
//   - HS256 signature verified with tokenSignKey (other algorithms rejected)
//   - presence of "exp" and now < exp
//   - presence of a non-empty "sub"
func ValidateAndParseJWTToken(tokenString, tokenSignKey string) (models.Claims, error) {
	mapClaims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, mapClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Claims{}, errors.New("empty subject error")
	}

	claims := models.Claims{Extra: make(map[string]any)}
	claims.Subject = subject
	if claims.ExpiresAt, err = mapClaims.GetExpirationTime(); err != nil {
		return models.Claims{}, fmt.Errorf("error occurred during getting expiration from token: %w", err)
	}
	if claims.IssuedAt, err = mapClaims.GetIssuedAt(); err != nil {
		return models.Claims{}, fmt.Errorf("error occurred during getting issued-at from token: %w", err)
	}

	maps.Copy(claims.Extra, mapClaims)
	for _, name := range registeredClaimNames {
		delete(claims.Extra, name)
	}

	return claims, nil
}

// ParseBearerToken extracts the credential from an Authorization header of
// the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errors.New("invalid authorization header")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.New("invalid authorization header")
	}

	return token, nil
}
