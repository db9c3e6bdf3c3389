// Package ai drafts content variants and renders images through the OpenAI API.
package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"content-workflow/internal/domain"
)

const systemPrompt = `You write social media posts for a company account.
Answer with a single JSON object and nothing else:
{"variants": ["...", "..."], "image_prompts": ["...", "..."]}
"variants" holds up to %d alternative post texts.
"image_prompts" holds up to %d descriptions of images that fit the post. Use an empty list when no image fits.`

// Config holds the OpenAI client settings.
type Config struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	// MaxRetries overrides the SDK retry count when >= 0.
	MaxRetries int
}

// Client implements the draft generator and image renderer on one OpenAI client.
type Client struct {
	client     openai.Client
	textModel  string
	imageModel string
}

// NewClient creates a Client from configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if cfg.TextModel == "" || cfg.ImageModel == "" {
		return nil, errors.New("openai text and image models are required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.MaxRetries >= 0 {
		opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))
	}
	return &Client{
		client:     openai.NewClient(opts...),
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
	}, nil
}

type draftAnswer struct {
	Variants     []string `json:"variants"`
	ImagePrompts []string `json:"image_prompts"`
}

// Generate asks the text model for post variants and image descriptions.
func (c *Client) Generate(ctx context.Context, source domain.SourceFields) (*domain.Draft, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.textModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(systemPrompt, domain.MaxVariants, domain.MaxImageCandidates)),
			openai.UserMessage(userPrompt(source)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion: empty choices")
	}

	answer, err := parseDraftAnswer(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return &domain.Draft{
		Variants:          answer.Variants,
		ImageDescriptions: answer.ImagePrompts,
	}, nil
}

// Render generates one image and returns its PNG bytes.
func (c *Client) Render(ctx context.Context, description string) ([]byte, error) {
	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         description,
		Model:          openai.ImageModel(c.imageModel),
		N:              openai.Int(1),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, errors.New("generate image: empty response")
	}
	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return data, nil
}

func userPrompt(source domain.SourceFields) string {
	var b strings.Builder
	b.WriteString("Instruction: ")
	b.WriteString(source.Instruction)
	b.WriteString("\n")
	writeField(&b, "Content type", source.ContentType)
	writeField(&b, "Template", source.Template)
	writeField(&b, "Purpose", source.Purpose)
	writeField(&b, "Write in the style of", source.StyleSample)
	if len(source.Keywords) > 0 {
		writeField(&b, "Keywords", strings.Join(source.Keywords, ", "))
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

// parseDraftAnswer decodes the model answer, tolerating a fenced code block around the JSON.
func parseDraftAnswer(content string) (*draftAnswer, error) {
	content = strings.TrimSpace(content)
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: answer is not a JSON object", domain.ErrInvalidDraft)
	}
	var answer draftAnswer
	if err := json.Unmarshal([]byte(content[start:end+1]), &answer); err != nil {
		return nil, fmt.Errorf("%w: decode answer: %v", domain.ErrInvalidDraft, err)
	}
	return &answer, nil
}
