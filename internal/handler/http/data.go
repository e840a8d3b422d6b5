// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/secure-api/internal/utils"
)

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	subject, _ := utils.GetSubjectFromContext(r.Context())

	utils.WriteJSON(w, h.services.DataService.CurrentUser(r.Context(), subject), http.StatusOK)
}

func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.DataService.Items(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) performanceTest(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.DataService.PerformanceTest(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
