package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const maxAnnotationInput = 40000

type geminiAnnotator struct {
	client        *genai.Client
	modelName     string
	promptBuilder *PromptBuilder
	maxRetries    int
	logger        *zap.Logger
}

// NewGeminiAnnotator returns a Gemini-backed Annotator, or the no-op annotator when no API
// key is configured.
func NewGeminiAnnotator(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (Annotator, error) {
	if apiKey == "" {
		return NewNoopAnnotator(), nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiAnnotator{
		client:        client,
		modelName:     modelName,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    2,
		logger:        logger,
	}, nil
}

// Available implements Annotator.
func (g *geminiAnnotator) Available() bool {
	return g.client != nil
}

// Annotate implements Annotator.
func (g *geminiAnnotator) Annotate(ctx context.Context, text string) (*Annotations, error) {
	if len(text) > maxAnnotationInput {
		text = text[:maxAnnotationInput]
	}

	prompt := g.promptBuilder.BuildAnnotationPrompt(text)

	var lastErr error
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		response, err := g.generate(ctx, prompt)
		if err == nil {
			return parseAnnotations(response)
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		g.logger.Debug("gemini annotation attempt failed", zap.Int("attempt", attempt), zap.Error(err))
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", g.maxRetries, lastErr)
}

func (g *geminiAnnotator) generate(ctx context.Context, prompt string) (string, error) {
	temperature := float32(0.1)
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  1024,
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate annotations: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
