// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/utils"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
}

// CheckHTTPMethod returns the handler registered with
// [chi.Mux.MethodNotAllowed]. A known path requested with a method it does
// not serve is answered like an unknown path: 404 with a JSON error body, so
// callers cannot probe which methods exist.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Strs("allowed", allowedMethods(router, r.URL.Path)).
			Msg("method not served on this path")

		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}

// allowedMethods lists the methods router serves on path, parameterised
// patterns included.
func allowedMethods(router chi.Routes, path string) []string {
	allowed := make([]string, 0, len(knownMethods))
	for _, method := range knownMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
