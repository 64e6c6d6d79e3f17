package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pocket-money/internal/config"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
)

func newTestGemini(serverURL string) ChatAdapter {
	return NewGeminiAdapter(config.Chat{BaseURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
}

func TestGenerate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash-exp:generateContent", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "how do I save?", req.Contents[0].Parts[0].Text)
		assert.InDelta(t, 0.7, req.GenerationConfig.Temperature, 1e-9)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Put "},{"text":"coins aside."}]}}]}`))
	}))
	defer srv.Close()

	text, err := newTestGemini(srv.URL).Generate(context.Background(), "how do I save?", "secret-key", "gemini-2.0-flash-exp")

	require.NoError(t, err)
	assert.Equal(t, "Put coins aside.", text)
}

func TestGenerate_MissingKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newTestGemini(srv.URL).Generate(context.Background(), "hi", " ", "m")

	assert.ErrorIs(t, err, ErrChatAuth)
	assert.False(t, called)
}

func TestGenerate_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := newTestGemini(srv.URL).Generate(context.Background(), "hi", "k", "m")

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerate_UpstreamCategories(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		category UpstreamCategory
	}{
		{"404", http.StatusNotFound, `{"error":{"code":404,"status":"NOT_FOUND"}}`, CategoryModelNotFound},
		{"400 not found", http.StatusBadRequest, `{"error":{"code":400,"status":"NOT_FOUND"}}`, CategoryModelNotFound},
		{"400 invalid argument", http.StatusBadRequest, `{"error":{"code":400,"status":"INVALID_ARGUMENT"}}`, CategoryOther},
		{"401", http.StatusUnauthorized, `{}`, CategoryUnauthorized},
		{"403", http.StatusForbidden, `{}`, CategoryUnauthorized},
		{"429", http.StatusTooManyRequests, `{}`, CategoryRateLimited},
		{"500", http.StatusInternalServerError, `oops`, CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestGemini(srv.URL).Generate(context.Background(), "hi", "k", "m")

			var upstream *UpstreamError
			require.True(t, errors.As(err, &upstream))
			assert.Equal(t, tt.status, upstream.Status)
			assert.Equal(t, tt.category, upstream.Category)
			assert.Equal(t, tt.category == CategoryModelNotFound, IsModelNotFound(err))
		})
	}
}

func TestClassifyUpstream_TruncatesBody(t *testing.T) {
	upstream := classifyUpstream(http.StatusInternalServerError, []byte(strings.Repeat("x", 2000)))

	assert.Len(t, upstream.Body, maxUpstreamBody)
}

func TestGenerate_ContextCanceled(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.ReadAll(r.Body)
		select {
		case <-r.Context().Done():
		case <-done:
		}
	}))
	defer srv.Close()
	defer close(done)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestGemini(srv.URL).Generate(ctx, "hi", "k", "m")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
