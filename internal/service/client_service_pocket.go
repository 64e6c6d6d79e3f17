package service

import (
	"context"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/models"
)

type clientPocketService struct {
	adapter adapter.ServerAdapter
}

func NewClientPocketService(serverAdapter adapter.ServerAdapter) ClientPocketService {
	return &clientPocketService{adapter: serverAdapter}
}

func (c *clientPocketService) Version(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	return version, mapAdapterError(err)
}

func (c *clientPocketService) Categories(ctx context.Context) (models.Categories, error) {
	categories, err := c.adapter.Categories(ctx)
	return categories, mapAdapterError(err)
}

func (c *clientPocketService) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardRow, error) {
	rows, err := c.adapter.Leaderboard(ctx, limit)
	return rows, mapAdapterError(err)
}

func (c *clientPocketService) Record(ctx context.Context, entry models.Entry) (models.Entry, error) {
	saved, err := c.adapter.RecordEntry(ctx, entry)
	return saved, mapAdapterError(err)
}

func (c *clientPocketService) Entries(ctx context.Context, kind models.EntryKind) ([]models.Entry, error) {
	entries, err := c.adapter.Entries(ctx, kind)
	return entries, mapAdapterError(err)
}

func (c *clientPocketService) DailyTotal(ctx context.Context, kind models.EntryKind, date models.Date) (int64, error) {
	total, err := c.adapter.DailyTotal(ctx, kind, date)
	if err != nil {
		return 0, mapAdapterError(err)
	}
	return total.Total, nil
}

func (c *clientPocketService) Summary(ctx context.Context) (models.Summary, error) {
	summary, err := c.adapter.Summary(ctx)
	return summary, mapAdapterError(err)
}

func (c *clientPocketService) Progress(ctx context.Context) (models.ProgressReport, error) {
	report, err := c.adapter.Progress(ctx)
	return report, mapAdapterError(err)
}

func (c *clientPocketService) Feedback(ctx context.Context) (models.FeedbackReport, error) {
	report, err := c.adapter.Feedback(ctx)
	return report, mapAdapterError(err)
}

func (c *clientPocketService) Wishlist(ctx context.Context) (models.WishlistGoal, error) {
	goal, err := c.adapter.Wishlist(ctx)
	return goal, mapAdapterError(err)
}

func (c *clientPocketService) SetWishlist(ctx context.Context, goal models.WishlistGoal) error {
	return mapAdapterError(c.adapter.SetWishlist(ctx, goal))
}

func (c *clientPocketService) ClearWishlist(ctx context.Context) error {
	return mapAdapterError(c.adapter.ClearWishlist(ctx))
}

func (c *clientPocketService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatReply, error) {
	reply, err := c.adapter.Chat(ctx, req)
	return reply, mapAdapterError(err)
}

func (c *clientPocketService) ChatPing(ctx context.Context, req models.ChatRequest) (models.ChatReply, error) {
	reply, err := c.adapter.ChatPing(ctx, req)
	return reply, mapAdapterError(err)
}

func (c *clientPocketService) ChatModels(ctx context.Context) (models.ChatModels, error) {
	list, err := c.adapter.ChatModels(ctx)
	return list, mapAdapterError(err)
}
