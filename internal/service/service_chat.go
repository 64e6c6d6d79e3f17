package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/config"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/validators"
	"github.com/MKhiriev/go-pocket-money/models"
)

// PingPrompt is sent by Ping to test the credential and the model.
const PingPrompt = "ping"

// ChatModelList is the set of selectable models, primary first.
var ChatModelList = []string{config.DefaultPrimaryModel, config.DefaultFallbackModel, "gemini-1.5-pro"}

type chatService struct {
	chatAdapter adapter.ChatAdapter
	validator   validators.Validator

	apiKey        string
	primaryModel  string
	fallbackModel string
	timeout       time.Duration

	logger *logger.Logger
}

func NewChatService(chatAdapter adapter.ChatAdapter, validator validators.Validator, cfg config.Chat, logger *logger.Logger) ChatService {
	return &chatService{
		chatAdapter:   chatAdapter,
		validator:     validator,
		apiKey:        cfg.APIKey,
		primaryModel:  cfg.PrimaryModel,
		fallbackModel: cfg.FallbackModel,
		timeout:       cfg.RequestTimeout,
		logger:        logger,
	}
}

// Ask forwards the prompt. When the primary model is reported missing the
// fallback model is tried exactly once; a missing model that the caller
// named explicitly is returned as is.
func (c *chatService) Ask(ctx context.Context, req models.ChatRequest) (models.ChatReply, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, req); err != nil {
		return models.ChatReply{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		apiKey = c.apiKey
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = c.primaryModel
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	text, err := c.chatAdapter.Generate(ctx, req.Prompt, apiKey, model)
	if err == nil {
		return models.ChatReply{Text: text, Model: model}, nil
	}
	if !adapter.IsModelNotFound(err) || model != c.primaryModel || c.fallbackModel == "" {
		return models.ChatReply{}, err
	}

	log.Info().
		Str("func", "*chatService.Ask").
		Str("model", model).
		Str("fallback", c.fallbackModel).
		Msg("primary model not found, using fallback")

	text, err = c.chatAdapter.Generate(ctx, req.Prompt, apiKey, c.fallbackModel)
	if err != nil {
		return models.ChatReply{}, err
	}

	return models.ChatReply{Text: text, Model: c.fallbackModel, FellBack: true}, nil
}

func (c *chatService) Ping(ctx context.Context, req models.ChatRequest) (models.ChatReply, error) {
	req.Prompt = PingPrompt
	return c.Ask(ctx, req)
}

func (c *chatService) Models() models.ChatModels {
	return models.ChatModels{
		Primary:  c.primaryModel,
		Fallback: c.fallbackModel,
		Models:   append([]string(nil), ChatModelList...),
	}
}
