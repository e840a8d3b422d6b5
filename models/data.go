// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is a single demo data entry.
type Item struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PerformanceResponse is returned by GET /api/performance-test.
type PerformanceResponse struct {
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	RandomNumber uint64    `json:"random_number"`
}
