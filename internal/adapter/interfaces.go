// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound transports.
//
// [ServerAdapter] is used by the client to talk to the go-pocket-money HTTP
// API; non-2xx answers are mapped to the sentinel errors in errors.go so
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
//
// [ChatAdapter] is used by the server to call the generative-language REST
// API. Its failures are typed: [ErrChatAuth], [ErrEmptyResponse] and
// [*UpstreamError] with a [UpstreamCategory] that drives model fallback.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pocket-money/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines the client's communication with the server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Login signs in (creating the user on first use) and stores the
	// returned bearer token.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	Version(ctx context.Context) (string, error)
	Categories(ctx context.Context) (models.Categories, error)
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardRow, error)

	RecordEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	Entries(ctx context.Context, kind models.EntryKind) ([]models.Entry, error)
	DailyTotal(ctx context.Context, kind models.EntryKind, date models.Date) (models.DailyTotal, error)

	Summary(ctx context.Context) (models.Summary, error)
	Progress(ctx context.Context) (models.ProgressReport, error)
	Feedback(ctx context.Context) (models.FeedbackReport, error)

	// Wishlist returns the current goal; a missing goal is [ErrNotFound].
	Wishlist(ctx context.Context) (models.WishlistGoal, error)
	SetWishlist(ctx context.Context, goal models.WishlistGoal) error
	ClearWishlist(ctx context.Context) error

	Chat(ctx context.Context, req models.ChatRequest) (models.ChatReply, error)
	ChatPing(ctx context.Context, req models.ChatRequest) (models.ChatReply, error)
	ChatModels(ctx context.Context) (models.ChatModels, error)
}

// ChatAdapter calls a generative-language model.
type ChatAdapter interface {
	// Generate sends prompt to model using apiKey and returns the text of
	// the first candidate.
	Generate(ctx context.Context, prompt, apiKey, model string) (string, error)
}
