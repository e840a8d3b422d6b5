// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/internal/utils"
)

// withTrustedHost rejects requests whose Host is not on the allow-list with
// 400 "Invalid host header". Entries starting with "*." match any subdomain.
// An empty allow-list disables the check.
func (h *Handler) withTrustedHost(next http.Handler) http.Handler {
	if len(h.allowedHosts) == 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hostAllowed(r.Host, h.allowedHosts) {
			logger.FromRequest(r).Warn().Str("host", r.Host).Err(ErrInvalidHost).Send()
			utils.WriteError(w, "Invalid host header", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func hostAllowed(hostport string, allowed []string) bool {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	host = strings.ToLower(host)

	for _, pattern := range allowed {
		pattern = strings.ToLower(pattern)
		switch {
		case pattern == "*":
			return true
		case strings.HasPrefix(pattern, "*."):
			if strings.HasSuffix(host, pattern[1:]) {
				return true
			}
		case host == pattern:
			return true
		}
	}

	return false
}
