package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// CompletionClient sends one prompt to the language model and returns its text.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

type GeminiOptions struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	Timeout         time.Duration
	// BaseURL overrides the API endpoint; empty uses the public Gemini API.
	BaseURL string
}

type geminiService struct {
	client  *genai.Client
	options GeminiOptions
}

func NewGeminiService(ctx context.Context, opts GeminiOptions) (CompletionClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("failed to create gemini client: API key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:  client,
		options: opts,
	}, nil
}

func (g *geminiService) Model() string {
	return g.options.Model
}

// Complete implements CompletionClient. One outbound call, no retry.
func (g *geminiService) Complete(ctx context.Context, prompt string) (string, error) {
	if g.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.options.Timeout)
		defer cancel()
	}

	temperature := g.options.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: g.options.MaxOutputTokens,
	}

	started := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.options.Model, genai.Text(prompt), config)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if resp == nil {
		return "", &CompletionError{Cause: errors.New("no response generated (nil response)")}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &CompletionError{Cause: errors.New("no text content in response")}
	}

	log.Debug().
		Str("model", g.options.Model).
		Int("prompt_chars", len(prompt)).
		Int("response_chars", len(text)).
		Dur("latency", time.Since(started)).
		Msg("📊 Gemini response received")

	return text, nil
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiCompletionError(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiCompletionError(*apiErrPtr)
	}
	return &CompletionError{Cause: fmt.Errorf("failed to generate text: %w", err)}
}

func apiCompletionError(apiErr genai.APIError) error {
	return &CompletionError{
		StatusCode: apiErr.Code,
		Cause:      fmt.Errorf("%s (%d): %s", apiErr.Status, apiErr.Code, apiErr.Message),
	}
}
