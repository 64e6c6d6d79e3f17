package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/app"
	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("%w: name is required", service.ErrInvalidInput), http.StatusBadRequest},
		{"wrong secret", service.ErrWrongSecret, http.StatusUnauthorized},
		{"expired token", fmt.Errorf("parse: %w", service.ErrTokenIsExpiredOrInvalid), http.StatusUnauthorized},
		{"missing user", store.ErrNoUserWasFound, http.StatusNotFound},
		{"missing goal", store.ErrWishlistNotFound, http.StatusNotFound},
		{"missing image", service.ErrNoWishlistImage, http.StatusNotFound},
		{"progress conflict", fmt.Errorf("after 3 attempts: %w", store.ErrProgressConflict), http.StatusConflict},
		{"undecodable image", service.ErrUnsupportedImage, http.StatusUnprocessableEntity},
		{"missing chat key", adapter.ErrChatAuth, http.StatusBadRequest},
		{"upstream", &adapter.UpstreamError{Status: 404, Category: adapter.CategoryModelNotFound}, http.StatusBadGateway},
		{"wrapped upstream", fmt.Errorf("ask: %w", &adapter.UpstreamError{Category: adapter.CategoryOther}), http.StatusBadGateway},
		{"empty reply", adapter.ErrEmptyResponse, http.StatusBadGateway},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"query failure", fmt.Errorf("%w: syntax", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invalid input keeps the cause",
			err:  fmt.Errorf("%w: %w", service.ErrInvalidInput, errors.New("label is required")),
			want: app.MsgInvalidDataProvided + ": label is required",
		},
		{
			name: "upstream names the category",
			err:  &adapter.UpstreamError{Status: 401, Category: adapter.CategoryUnauthorized, Body: "API key not valid"},
			want: app.MsgChatUpstreamFailed + ": unauthorized",
		},
		{
			name: "mapped sentinel",
			err:  fmt.Errorf("get goal: %w", store.ErrWishlistNotFound),
			want: app.MsgWishlistNotFound,
		},
		{
			name: "internal cause is hidden",
			err:  fmt.Errorf("%w: password authentication failed for user postgres", store.ErrExecutingQuery),
			want: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFromError(tt.err, statusFromError(tt.err)))
		})
	}
}

func TestMessageFromError_UnmappedClientError(t *testing.T) {
	assert.Equal(t, "Conflict", messageFromError(store.ErrUserAlreadyExists, http.StatusConflict))
}
