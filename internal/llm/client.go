// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm wraps the hosted chat-completion API behind a retrying client.
// The transport speaks the OpenAI wire protocol against Groq's endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/pdiddy/content-engine/pkg/types"
)

// ErrMissingAPIKey is returned by New when no credential is configured.
// Credential problems fail at construction, never through the retry loop.
var ErrMissingAPIKey = errors.New("groq api key required: set api_key or GROQ_API_KEY")

// Backend abstracts the chat-completion API so tests can supply a mock.
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ModelCallError reports a call that exhausted all attempts.
type ModelCallError struct {
	Attempts int
	Err      error
}

func (e *ModelCallError) Error() string {
	return fmt.Sprintf("model call failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ModelCallError) Unwrap() error {
	return e.Err
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// Client issues single-turn completion calls with bounded retry. A Client is
// safe for concurrent use; it holds only immutable configuration.
type Client struct {
	backend  Backend
	attempts int
}

// New builds a Client for the configured Groq endpoint. A missing credential
// is a construction error.
func New(cfg types.AIConfig) (*Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewWithBackend(newGroqBackend(cfg, apiKey), cfg.MaxAttempts), nil
}

// NewWithBackend wraps an existing backend with the retry policy. Zero or
// negative maxAttempts selects the default of 3 total attempts.
func NewWithBackend(backend Backend, maxAttempts int) *Client {
	if maxAttempts <= 0 {
		maxAttempts = types.DefaultMaxAttempts
	}
	return &Client{backend: backend, attempts: maxAttempts}
}

// Call sends one prompt and returns the trimmed response text. Failed
// attempts are retried with exponential backoff (1, 2, 4... base units
// between attempts); once all attempts are spent the last failure is
// wrapped in a *ModelCallError.
func (c *Client) Call(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < c.attempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		text, err := c.backend.Complete(ctx, prompt)
		if err == nil {
			return strings.TrimSpace(text), nil
		}
		lastErr = err
	}
	return "", &ModelCallError{Attempts: c.attempts, Err: lastErr}
}
