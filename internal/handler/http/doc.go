// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of secure-api.
//
// It wires the chi router, the middleware chain and the route handlers.
// Tracing, security headers, request metrics, access logging, panic
// recovery, CORS, host filtering and bearer authentication are handled here
// before requests reach the service layer.
package http
