package adapter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pocket-money/internal/config"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/utils"
)

// ChatTemperature is the sampling temperature sent with every prompt.
const ChatTemperature = 0.7

const generatePath = "/v1beta/models/{model}:generateContent"

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewGeminiAdapter constructs a [ChatAdapter] for the generative-language
// REST API rooted at cfg.BaseURL.
func NewGeminiAdapter(cfg config.Chat, logger *logger.Logger) ChatAdapter {
	return &geminiAdapter{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.RequestTimeout),
		logger: logger,
	}
}

// Generate implements [ChatAdapter].
func (g *geminiAdapter) Generate(ctx context.Context, prompt, apiKey, model string) (string, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(apiKey) == "" {
		return "", ErrChatAuth
	}

	body := geminiRequest{
		Contents:         []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{Temperature: ChatTemperature},
	}

	var result geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", apiKey).
		SetPathParam("model", model).
		SetBody(body).
		SetResult(&result).
		Post(generatePath)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		log.Err(err).Str("func", "*geminiAdapter.Generate").Str("model", model).Msg("chat transport failure")
		return "", &UpstreamError{Category: CategoryOther, Body: truncate(err.Error(), maxUpstreamBody)}
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		upstream := classifyUpstream(resp.StatusCode(), resp.Body())
		log.Warn().
			Str("func", "*geminiAdapter.Generate").
			Str("model", model).
			Int("status", upstream.Status).
			Str("category", string(upstream.Category)).
			Msg("chat upstream error")
		return "", upstream
	}

	text := firstCandidateText(result)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func firstCandidateText(r geminiResponse) string {
	if len(r.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return strings.TrimSpace(sb.String())
}
