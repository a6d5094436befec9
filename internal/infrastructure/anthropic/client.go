// Package anthropic implements the Messages API client behind the assistant.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mealmaster/backend/internal/domain"
	"github.com/mealmaster/backend/internal/logger"
)

const (
	defaultTimeout = 60 * time.Second
	apiVersion     = "2023-06-01"
)

// Client calls the Anthropic Messages API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	log        *zap.SugaredLogger
}

// NewClient creates a new Anthropic API client.
func NewClient(apiKey, baseURL, model string, maxTokens int, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:    apiKey,
		baseURL:   baseURL,
		model:     model,
		maxTokens: maxTokens,
		log:       logger.GetLogger("anthropic"),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type messagesRequest struct {
	Model     string               `json:"model"`
	MaxTokens int                  `json:"max_tokens"`
	System    string               `json:"system,omitempty"`
	Messages  []domain.ChatMessage `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends one Messages call and returns the assistant text.
func (c *Client) Complete(ctx context.Context, system string, messages []domain.ChatMessage) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrAssistantNotConfigured
	}

	payload, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    system,
		Messages:  messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", domain.ErrAssistantTimeout
		}
		return "", fmt.Errorf("AI service error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("AI service error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warnw("messages call failed", "status", resp.StatusCode)
		return "", &domain.StatusError{Code: resp.StatusCode}
	}

	var result messagesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Content) == 0 {
		return "", fmt.Errorf("AI service returned empty content")
	}

	return result.Content[0].Text, nil
}

// isTimeout reports whether err is a client-side timeout.
func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
