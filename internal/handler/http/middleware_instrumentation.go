// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"
)

var securityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"X-XSS-Protection":       "1; mode=block",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
}

// withInstrumentation sets the security headers, then times the rest of the
// chain and records one (method, path) count and one duration sample.
//
// Headers are set before the inner handlers run so they are present on every
// response, including errors and recovered panics.
func (h *Handler) withInstrumentation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range securityHeaders {
			w.Header().Set(k, v)
		}

		method, path := r.Method, r.URL.Path
		start := time.Now()
		defer func() {
			h.metrics.Observe(method, path, time.Since(start))
		}()

		next.ServeHTTP(w, r)
	})
}
