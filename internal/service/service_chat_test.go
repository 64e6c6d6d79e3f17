package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/config"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/mock"
	"github.com/MKhiriev/go-pocket-money/internal/validators"
	"github.com/MKhiriev/go-pocket-money/models"
)

const (
	testPrimary  = "primary-model"
	testFallback = "fallback-model"
)

func newTestChatService(t *testing.T, ctrl *gomock.Controller) (ChatService, *mock.MockChatAdapter) {
	t.Helper()

	chat := mock.NewMockChatAdapter(ctrl)
	cfg := config.Chat{
		APIKey:         "server-key",
		PrimaryModel:   testPrimary,
		FallbackModel:  testFallback,
		RequestTimeout: time.Second,
	}
	return NewChatService(chat, validators.NewPocketMoneyValidator(4, 0), cfg, logger.Nop()), chat
}

var modelNotFound = &adapter.UpstreamError{Status: http.StatusNotFound, Category: adapter.CategoryModelNotFound}

func TestChatService_Ask_Primary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, chat := newTestChatService(t, ctrl)

	chat.EXPECT().Generate(gomock.Any(), "hello", "server-key", testPrimary).DoAndReturn(
		func(ctx context.Context, _, _, _ string) (string, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return "hi there", nil
		})

	reply, err := svc.Ask(context.Background(), models.ChatRequest{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, models.ChatReply{Text: "hi there", Model: testPrimary}, reply)
}

func TestChatService_Ask_RequestCredentialWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, chat := newTestChatService(t, ctrl)

	chat.EXPECT().Generate(gomock.Any(), "hello", "user-key", "custom").Return("ok", nil)

	reply, err := svc.Ask(context.Background(), models.ChatRequest{Prompt: "hello", APIKey: " user-key ", Model: "custom"})
	require.NoError(t, err)
	assert.Equal(t, "custom", reply.Model)
	assert.False(t, reply.FellBack)
}

func TestChatService_Ask_FallbackOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, chat := newTestChatService(t, ctrl)

	gomock.InOrder(
		chat.EXPECT().Generate(gomock.Any(), "hello", "server-key", testPrimary).Return("", modelNotFound),
		chat.EXPECT().Generate(gomock.Any(), "hello", "server-key", testFallback).Return("from fallback", nil),
	)

	reply, err := svc.Ask(context.Background(), models.ChatRequest{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, models.ChatReply{Text: "from fallback", Model: testFallback, FellBack: true}, reply)
}

func TestChatService_Ask_FallbackFailsToo(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, chat := newTestChatService(t, ctrl)

	chat.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), testPrimary).Return("", modelNotFound)
	chat.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), testFallback).Return("", modelNotFound)

	_, err := svc.Ask(context.Background(), models.ChatRequest{Prompt: "hello"})
	assert.True(t, adapter.IsModelNotFound(err))
}

func TestChatService_Ask_NoFallbackForExplicitModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, chat := newTestChatService(t, ctrl)

	chat.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), "custom").Return("", modelNotFound)

	_, err := svc.Ask(context.Background(), models.ChatRequest{Prompt: "hello", Model: "custom"})
	assert.True(t, adapter.IsModelNotFound(err))
}

func TestChatService_Ask_NoFallbackForOtherErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "rate limited", err: &adapter.UpstreamError{Status: http.StatusTooManyRequests, Category: adapter.CategoryRateLimited}},
		{name: "unauthorized", err: &adapter.UpstreamError{Status: http.StatusForbidden, Category: adapter.CategoryUnauthorized}},
		{name: "empty", err: adapter.ErrEmptyResponse},
		{name: "no credential", err: adapter.ErrChatAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, chat := newTestChatService(t, ctrl)
			chat.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), testPrimary).Return("", tt.err)

			_, err := svc.Ask(context.Background(), models.ChatRequest{Prompt: "hello"})
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestChatService_Ask_EmptyPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestChatService(t, ctrl)

	_, err := svc.Ask(context.Background(), models.ChatRequest{Prompt: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, validators.ErrEmptyPrompt)
}

func TestChatService_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, chat := newTestChatService(t, ctrl)

	chat.EXPECT().Generate(gomock.Any(), PingPrompt, "server-key", testPrimary).Return("pong", nil)

	reply, err := svc.Ping(context.Background(), models.ChatRequest{Prompt: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "pong", reply.Text)
}

func TestChatService_Models(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestChatService(t, ctrl)

	list := svc.Models()
	assert.Equal(t, testPrimary, list.Primary)
	assert.Equal(t, testFallback, list.Fallback)
	assert.Equal(t, ChatModelList, list.Models)
}
