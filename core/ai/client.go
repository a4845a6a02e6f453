package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"campus-recommender/core/config"
	"campus-recommender/core/logger"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ExtractedFields is the structured output of the extraction call
type ExtractedFields struct {
	EventType string   `json:"event_type"`
	Keywords  []string `json:"keywords"`
	Summary   string   `json:"summary"`
}

// Client is the boundary to the external AI provider. It is
// constructed once at startup and injected; services never reach for
// a process-wide instance.
type Client interface {
	// ExtractEventFields derives event_type, 5-10 lowercase keywords
	// and a one-line summary from an event's title and description.
	ExtractEventFields(ctx context.Context, title, description string) (*ExtractedFields, error)
	// EmbedText returns the embedding vector for a text.
	EmbedText(ctx context.Context, text string) ([]float64, error)
}

type openAIClient struct {
	client         *openai.Client
	chatModel      string
	embeddingModel string
	timeout        time.Duration
}

// NewClient builds a client against any OpenAI-compatible endpoint
func NewClient(cfg config.AIConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI_API_KEY is missing")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAIClient{
		client:         openai.NewClient(opts...),
		chatModel:      cfg.ChatModel,
		embeddingModel: cfg.EmbeddingModel,
		timeout:        time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

const extractPrompt = `Extract:
1) event_type (Workshop/Talk/Competition/Seminar/Career Talk etc.)
2) 5-10 keywords (lowercase)
3) 1-line summary

Return ONLY valid JSON with keys "event_type", "keywords", "summary".

TITLE: %s
DESCRIPTION: %s`

func (c *openAIClient) ExtractEventFields(ctx context.Context, title, description string) (*ExtractedFields, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(extractPrompt, title, description)),
		}),
		Model: openai.F(openai.ChatModel(c.chatModel)),
	})
	if err != nil {
		logger.Error("AIClient:ExtractEventFields", "error", err)
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("extraction returned no choices")
	}

	var fields ExtractedFields
	raw := stripCodeFence(completion.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		logger.Error("AIClient:ExtractEventFields:Unmarshal", "error", err)
		return nil, fmt.Errorf("extraction returned invalid JSON: %w", err)
	}
	if fields.EventType == "" || len(fields.Keywords) == 0 || fields.Summary == "" {
		return nil, fmt.Errorf("extraction returned incomplete fields")
	}

	for i, kw := range fields.Keywords {
		fields.Keywords[i] = strings.ToLower(strings.TrimSpace(kw))
	}

	return &fields, nil
}

func (c *openAIClient) EmbedText(ctx context.Context, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.F[openai.EmbeddingNewParamsInputUnion](
			openai.EmbeddingNewParamsInputArrayOfStrings([]string{text}),
		),
		Model: openai.F(openai.EmbeddingModel(c.embeddingModel)),
	})
	if err != nil {
		logger.Error("AIClient:EmbedText", "error", err)
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding returned no data")
	}

	return resp.Data[0].Embedding, nil
}

// stripCodeFence removes a surrounding markdown fence that some models
// wrap JSON responses in
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
