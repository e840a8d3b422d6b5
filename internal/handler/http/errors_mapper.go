// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/internal/service"
	"github.com/MKhiriev/secure-api/internal/utils"
	"github.com/MKhiriev/secure-api/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusUnprocessableEntity,
	service.ErrWrongCredentials:    http.StatusUnauthorized,
	service.ErrUnauthorized:        http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError builds the "detail" value of an error reply. Validation
// failures list every violated rule; other errors carry a fixed message so
// internals never leak.
func detailFromError(err error, status int) any {
	var fieldErrors validators.FieldErrors
	switch {
	case errors.As(err, &fieldErrors):
		return fieldErrors
	case errors.Is(err, service.ErrWrongCredentials):
		return "Incorrect username or password"
	case errors.Is(err, ErrInvalidJSON):
		return "Invalid JSON was passed"
	default:
		return http.StatusText(status)
	}
}

// writeError logs err and answers with the mapped status and detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, detailFromError(err, status), status)
}
