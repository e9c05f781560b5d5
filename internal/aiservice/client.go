/*
Package aiservice talks to the external generative text/vision service through
an OpenAI compatible chat-completions endpoint. Every call is a single attempt:
the caller decides whether to try again.
*/
package aiservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// --- API Configuration ---
const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultModel       = "gpt-4o-mini"
	defaultHTTPTimeout = 60 * time.Second
	completionsPath    = "/chat/completions"
	jsonObjectFormat   = "json_object"
)

// Config is passed to NewClient. An empty APIKey is only reported when a
// generation is attempted.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	HTTPTimeout time.Duration
}

// ConfigFromEnv reads OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_MODEL and
// OPENAI_HTTP_TIMEOUT, applying defaults for everything but the key.
func ConfigFromEnv() Config {
	cfg := Config{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		BaseURL:     os.Getenv("OPENAI_BASE_URL"),
		Model:       os.Getenv("OPENAI_MODEL"),
		HTTPTimeout: defaultHTTPTimeout,
	}
	if raw := os.Getenv("OPENAI_HTTP_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.HTTPTimeout = d
		}
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = defaultHTTPTimeout
	}
	return c
}

// --- Structs for the chat-completions Request/Response ---

type ChatPayload struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
}

// ChatMessage content is either a plain string or a list of ContentPart.
type ChatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatResponse struct {
	Choices []struct {
		Message *struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiErrorBody struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Request is one generation task.
type Request struct {
	// Task names the call in logs ("workout_plan", "meal_plan", "food_scan").
	Task         string
	SystemPrompt string
	UserPrompt   string
	// ImageURL, when set, is sent as an image part next to the prompt text.
	ImageURL    string
	Temperature float64
	MaxTokens   int
}

// Client performs chat-completion exchanges.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient builds a client. A nil httpClient gets one with cfg.HTTPTimeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	cfg = cfg.withDefaults()
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Configured reports whether a credential is set.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Generate sends req and decodes the JSON completion content into out.
// Errors are always *GenerationError.
func (c *Client) Generate(ctx context.Context, logger *zerolog.Logger, req Request, out interface{}) error {
	if c.cfg.APIKey == "" {
		logger.Error().Str("task", req.Task).Msg("FATAL: OPENAI_API_KEY is not set.")
		return newConfigurationError()
	}

	payloadBytes, err := json.Marshal(c.buildPayload(req))
	if err != nil {
		return newMalformedError("could not encode request", fmt.Errorf("failed to marshal payload: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+completionsPath, bytes.NewReader(payloadBytes))
	if err != nil {
		return newNetworkError(fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	start := time.Now()
	logger.Info().Str("task", req.Task).Str("model", c.cfg.Model).Bool("with_image", req.ImageURL != "").Msg("Calling generation API...")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		genErr := newNetworkError(err)
		logger.Error().Err(err).Str("task", req.Task).Msg("Generation request failed")
		return genErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		genErr := newNetworkError(fmt.Errorf("failed to read response: %w", err))
		logger.Error().Err(err).Str("task", req.Task).Msg("Failed to read generation response")
		return genErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		genErr := newServiceError(resp.StatusCode, serviceErrorMessage(resp.StatusCode, body))
		logger.Error().
			Err(genErr.Err).
			Str("task", req.Task).
			Str("kind", string(genErr.Kind)).
			Int("status", resp.StatusCode).
			Msg("Generation API returned an error")
		return genErr
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		logger.Error().Err(err).Str("task", req.Task).Msg("Failed to decode generation response")
		return newMalformedError("response body is not valid JSON", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message == nil || chatResp.Choices[0].Message.Content == "" {
		logger.Error().Str("task", req.Task).Int("choices", len(chatResp.Choices)).Msg("No content found in generation response")
		return newMalformedError("no completion content returned", nil)
	}

	content := chatResp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		logger.Error().Err(err).Str("task", req.Task).Msg("Failed to decode completion content")
		return newMalformedError(contentDecodeDetail(err), err)
	}

	logger.Info().Str("task", req.Task).Dur("elapsed", time.Since(start)).Msg("Generation completed")
	return nil
}

func (c *Client) buildPayload(req Request) ChatPayload {
	var userContent interface{} = req.UserPrompt
	if req.ImageURL != "" {
		userContent = []ContentPart{
			{Type: "text", Text: req.UserPrompt},
			{Type: "image_url", ImageURL: &ImageURL{URL: req.ImageURL}},
		}
	}

	return ChatPayload{
		Model: c.cfg.Model,
		Messages: []ChatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: userContent},
		},
		ResponseFormat: &ResponseFormat{Type: jsonObjectFormat},
		Temperature:    req.Temperature,
		MaxTokens:      req.MaxTokens,
	}
}

// serviceErrorMessage prefers error.message from the body and falls back to the status.
func serviceErrorMessage(statusCode int, body []byte) string {
	var apiErr apiErrorBody
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return fmt.Sprintf("HTTP error %d", statusCode)
}

// contentDecodeDetail tells invalid JSON apart from valid JSON with a mistyped field.
func contentDecodeDetail(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" && typeErr.Type != nil {
			field = typeErr.Type.String()
		}
		return fmt.Sprintf("completion field %s has an unexpected value (%s)", field, typeErr.Value)
	}
	return "completion content is not valid JSON"
}
