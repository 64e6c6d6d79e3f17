package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pocket-money/internal/config"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/utils"
	"github.com/MKhiriev/go-pocket-money/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login and reads the bearer token from the Authorization header.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	username, err := utils.ParseUsernameFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse username: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "*httpServerAdapter.Login").Str("username", username).Msg("logged in")

	return models.Token{SignedString: token, Username: username}, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) Categories(ctx context.Context) (models.Categories, error) {
	var categories models.Categories
	err := h.getJSON(h.client.R().SetContext(ctx), "/api/categories", &categories)
	return categories, err
}

func (h *httpServerAdapter) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardRow, error) {
	req := h.client.R().SetContext(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	rows := make([]models.LeaderboardRow, 0)
	err := h.getJSON(req, "/api/leaderboard", &rows)
	return rows, err
}

func (h *httpServerAdapter) RecordEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	var saved models.Entry
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		SetResult(&saved).
		Post("/api/entries/")
	if err != nil {
		return models.Entry{}, fmt.Errorf("record entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return saved, nil
}

func (h *httpServerAdapter) Entries(ctx context.Context, kind models.EntryKind) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	req := h.authedRequest(ctx).SetPathParam("kind", string(kind))
	err := h.getJSON(req, "/api/entries/{kind}", &entries)
	return entries, err
}

func (h *httpServerAdapter) DailyTotal(ctx context.Context, kind models.EntryKind, date models.Date) (models.DailyTotal, error) {
	var total models.DailyTotal
	req := h.authedRequest(ctx).
		SetPathParam("kind", string(kind)).
		SetQueryParam("date", date.String())
	err := h.getJSON(req, "/api/entries/{kind}/daily", &total)
	return total, err
}

func (h *httpServerAdapter) Summary(ctx context.Context) (models.Summary, error) {
	var summary models.Summary
	err := h.getJSON(h.authedRequest(ctx), "/api/summary", &summary)
	return summary, err
}

func (h *httpServerAdapter) Progress(ctx context.Context) (models.ProgressReport, error) {
	var report models.ProgressReport
	err := h.getJSON(h.authedRequest(ctx), "/api/progress", &report)
	return report, err
}

func (h *httpServerAdapter) Feedback(ctx context.Context) (models.FeedbackReport, error) {
	var report models.FeedbackReport
	err := h.getJSON(h.authedRequest(ctx), "/api/feedback", &report)
	return report, err
}

func (h *httpServerAdapter) Wishlist(ctx context.Context) (models.WishlistGoal, error) {
	var goal models.WishlistGoal
	err := h.getJSON(h.authedRequest(ctx), "/api/wishlist/", &goal)
	return goal, err
}

func (h *httpServerAdapter) SetWishlist(ctx context.Context, goal models.WishlistGoal) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(goal).
		Put("/api/wishlist/")
	if err != nil {
		return fmt.Errorf("set wishlist request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ClearWishlist(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/wishlist/")
	if err != nil {
		return fmt.Errorf("clear wishlist request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatReply, error) {
	return h.postChat(ctx, "/api/chat", req)
}

func (h *httpServerAdapter) ChatPing(ctx context.Context, req models.ChatRequest) (models.ChatReply, error) {
	return h.postChat(ctx, "/api/chat/ping", req)
}

func (h *httpServerAdapter) ChatModels(ctx context.Context) (models.ChatModels, error) {
	var list models.ChatModels
	err := h.getJSON(h.client.R().SetContext(ctx), "/api/chat/models", &list)
	return list, err
}

func (h *httpServerAdapter) postChat(ctx context.Context, path string, req models.ChatRequest) (models.ChatReply, error) {
	var reply models.ChatReply
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&reply).
		Post(path)
	if err != nil {
		return models.ChatReply{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatReply{}, err
	}

	return reply, nil
}

func (h *httpServerAdapter) getJSON(req *resty.Request, path string, result any) error {
	resp, err := req.SetResult(result).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
