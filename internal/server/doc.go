// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the HTTP transport.
//
// It owns the server lifecycle: startup, signal handling, graceful shutdown
// and release of the resources handed to it (such as the side-store
// connection).
package server
