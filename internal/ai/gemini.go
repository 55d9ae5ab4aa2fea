package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/gustavopk/imobcopy/internal/logger"
)

// Sentinel errors the HTTP layer maps to distinct responses.
var (
	// ErrEmptyResponse means the model answered but the expected text field
	// was missing or blank.
	ErrEmptyResponse = errors.New("resposta vazia do modelo")
	// ErrTimeout means the single attempt against the model ran past the
	// configured deadline.
	ErrTimeout = errors.New("tempo limite excedido na chamada ao modelo")
)

// generativeModel is the slice of genai.GenerativeModel the client needs.
// Tests substitute a deterministic implementation.
type generativeModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// AIClient wraps the Gemini API behind the two text-shaping operations the
// composer depends on.
type AIClient struct {
	client  *genai.Client
	model   generativeModel
	timeout time.Duration
}

// NewAIClient initializes the Gemini client. modelName and timeout come from
// configuration; timeout bounds each individual generation call.
func NewAIClient(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*AIClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json" // Force structured JSON output

	return &AIClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Close closes the underlying client connection.
func (c *AIClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// featureResponse is the structured response for the feature-formatting call.
type featureResponse struct {
	FormattedFeatures string `json:"formattedFeatures"`
}

// storyResponse is the structured response for the story-caption call.
type storyResponse struct {
	StoryText string `json:"storyText"`
}

// FormatFeatures sends the agent's raw feature text to the model and returns
// the bullet-per-line block, with the trailing-semicolon post-condition
// repaired locally rather than trusted from the model.
func (c *AIClient) FormatFeatures(ctx context.Context, rawFeatureText string) (string, error) {
	prompt := fmt.Sprintf(FeatureFormatPrompt, rawFeatureText)

	var parsed featureResponse
	if err := c.generateJSON(ctx, prompt, &parsed); err != nil {
		return "", err
	}
	if parsed.FormattedFeatures == "" {
		return "", ErrEmptyResponse
	}

	return EnsureSemicolonTermination(parsed.FormattedFeatures), nil
}

// GenerateStoryCaption sends the raw description to the model and returns the
// single-line caption, with stray leading/trailing pipes stripped locally.
func (c *AIClient) GenerateStoryCaption(ctx context.Context, rawText string) (string, error) {
	prompt := fmt.Sprintf(StoryCaptionPrompt, rawText)

	var parsed storyResponse
	if err := c.generateJSON(ctx, prompt, &parsed); err != nil {
		return "", err
	}
	if parsed.StoryText == "" {
		return "", ErrEmptyResponse
	}

	return TrimCaptionPipes(parsed.StoryText), nil
}

// generateJSON runs a single bounded generation attempt and unmarshals the
// JSON text part into v. No retries: the agent re-submits on failure.
func (c *AIClient) generateJSON(ctx context.Context, prompt string, v any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("gemini generation failed: %w", err)
	}

	return parseJSONResponse(ctx, resp, v)
}

// parseJSONResponse extracts the first text part of the model response and
// unmarshals it.
func parseJSONResponse(ctx context.Context, resp *genai.GenerateContentResponse, v any) error {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ErrEmptyResponse
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return fmt.Errorf("expected text part, got %T", part)
	}

	if err := json.Unmarshal([]byte(text), v); err != nil {
		logger.Warn(ctx, "Model returned unparsable JSON", "payload", string(text))
		return fmt.Errorf("JSON parse error: %w", err)
	}
	return nil
}
