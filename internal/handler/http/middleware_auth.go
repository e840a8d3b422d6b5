// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/internal/utils"
)

const (
	detailNotAuthenticated = "Not authenticated"
	detailInvalidToken     = "Invalid token"
)

// auth enforces bearer authentication.
//
// A missing or non-bearer Authorization header is answered with 401
// "Not authenticated". A credential that fails verification is answered with
// 401 "Invalid token". On success the token subject is stored under
// [utils.SubjectCtxKey] and the request proceeds.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("request not authenticated")
			w.Header().Set("WWW-Authenticate", "Bearer")
			utils.WriteError(w, detailNotAuthenticated, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("token rejected")
			w.Header().Set("WWW-Authenticate", "Bearer")
			utils.WriteError(w, detailInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.SubjectCtxKey, claims.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the credential from "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
