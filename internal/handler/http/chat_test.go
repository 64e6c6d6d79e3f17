package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/app"
	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/models"
)

func TestChat(t *testing.T) {
	h, m := newTestHandler(t)
	m.chat.EXPECT().Ask(gomock.Any(), models.ChatRequest{Prompt: "how do I save?", Model: "gemini-2.0-flash"}).
		Return(models.ChatReply{Text: "Put aside a little every week.", Model: "gemini-1.5-flash", FellBack: true}, nil)

	body := `{"prompt":"how do I save?","model":"gemini-2.0-flash"}`
	rec := httptest.NewRecorder()
	h.chat(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"text":"Put aside a little every week.","model":"gemini-1.5-flash","fell_back":true}`,
		rec.Body.String())
}

func TestChat_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.chat(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("prompt=hi")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing credential",
			err:        adapter.ErrChatAuth,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgChatCredentialMissing,
		},
		{
			name:       "empty prompt",
			err:        fmt.Errorf("%w: prompt is required", service.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided + ": prompt is required",
		},
		{
			name:       "rate limited upstream",
			err:        &adapter.UpstreamError{Status: http.StatusTooManyRequests, Category: adapter.CategoryRateLimited},
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgChatUpstreamFailed + ": rate-limited",
		},
		{
			name:       "empty reply",
			err:        adapter.ErrEmptyResponse,
			wantStatus: http.StatusBadGateway,
			wantMsg:    app.MsgChatEmptyReply,
		},
		{
			name:       "timeout",
			err:        fmt.Errorf("generate: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantMsg:    app.MsgTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.chat.EXPECT().Ask(gomock.Any(), gomock.Any()).Return(models.ChatReply{}, tt.err)

			rec := httptest.NewRecorder()
			h.chat(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"prompt":"hi"}`)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestChatPing_EmptyBody(t *testing.T) {
	h, m := newTestHandler(t)
	m.chat.EXPECT().Ping(gomock.Any(), models.ChatRequest{}).
		Return(models.ChatReply{Text: "pong", Model: "gemini-2.0-flash"}, nil)

	rec := httptest.NewRecorder()
	h.chatPing(rec, httptest.NewRequest(http.MethodPost, "/api/chat/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"text":"pong"`)
}

func TestChatPing_WithCredential(t *testing.T) {
	h, m := newTestHandler(t)
	m.chat.EXPECT().Ping(gomock.Any(), models.ChatRequest{APIKey: "user-key"}).
		Return(models.ChatReply{Text: "pong"}, nil)

	rec := httptest.NewRecorder()
	h.chatPing(rec, httptest.NewRequest(http.MethodPost, "/api/chat/ping", strings.NewReader(`{"api_key":"user-key"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChatModels(t *testing.T) {
	h, m := newTestHandler(t)
	m.chat.EXPECT().Models().Return(models.ChatModels{
		Primary:  "gemini-2.0-flash",
		Fallback: "gemini-1.5-flash",
		Models:   []string{"gemini-2.0-flash", "gemini-1.5-flash"},
	})

	rec := httptest.NewRecorder()
	h.chatModels(rec, httptest.NewRequest(http.MethodGet, "/api/chat/models", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"primary":"gemini-2.0-flash","fallback":"gemini-1.5-flash","models":["gemini-2.0-flash","gemini-1.5-flash"]}`,
		rec.Body.String())
}
