// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-item-sync/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// It answers 405 with a JSON error body and an Allow header listing the
// methods the matched route supports.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	methods := []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		for _, method := range methods {
			rctx := chi.NewRouteContext()
			if router.Match(rctx, method, r.URL.Path) {
				w.Header().Add("Allow", method)
			}
		}

		utils.WriteError(w, r, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}
