// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pocket-money/internal/utils"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/wishlist/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("goal"))
	})
	router.Put("/api/wishlist/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Delete("/api/wishlist/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Get("/api/entries/{kind}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/entries/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET wishlist served", http.MethodGet, "/api/wishlist/", http.StatusOK},
		{"PUT wishlist served", http.MethodPut, "/api/wishlist/", http.StatusNoContent},
		{"DELETE wishlist served", http.MethodDelete, "/api/wishlist/", http.StatusNoContent},
		{"GET parameterised path served", http.MethodGet, "/api/entries/expense", http.StatusOK},
		{"POST entries served", http.MethodPost, "/api/entries/", http.StatusCreated},
		{"POST wishlist hidden", http.MethodPost, "/api/wishlist/", http.StatusNotFound},
		{"PATCH wishlist hidden", http.MethodPatch, "/api/wishlist/", http.StatusNotFound},
		{"DELETE parameterised path hidden", http.MethodDelete, "/api/entries/income", http.StatusNotFound},
		{"GET entries root hidden", http.MethodGet, "/api/entries/", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/api/nonexistent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_WritesJSONError(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/wishlist/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "Not Found", body.Error)
}

func TestAllowedMethods(t *testing.T) {
	router := buildRouter()

	assert.Equal(t,
		[]string{http.MethodGet, http.MethodPut, http.MethodDelete},
		allowedMethods(router, "/api/wishlist/"))
	assert.Equal(t, []string{http.MethodGet}, allowedMethods(router, "/api/entries/gift"))
	assert.Empty(t, allowedMethods(router, "/api/nowhere"))
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()
	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			method := http.MethodGet
			if i%2 == 1 {
				method = http.MethodPatch
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/api/wishlist/", nil))
			done <- rr.Code
		}(i)
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.True(t, code == http.StatusOK || code == http.StatusNotFound,
			"unexpected status code: %d", code)
	}
}
