// Package generation calls an external text-generation service.
package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"docqa/internal/config"
)

// Backend names accepted by New.
const (
	BackendRelay  = "relay"
	BackendGemini = "gemini"
	BackendOpenAI = "openai"
)

// ErrMissingCredential is returned before any network call when no API key is configured.
var ErrMissingCredential = errors.New("generation API key is missing")

// Request is a single prompt sent to the model.
type Request struct {
	Prompt string
	Model  string
}

// Response carries the generated text verbatim.
type Response struct {
	Text string
}

// Generator produces text for a prompt. Implementations never retry.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// UpstreamError reports a non-success reply from the generation service.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("generation service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("generation service returned status %d: %s", e.StatusCode, e.Body)
}

// New builds the generator selected by cfg.Backend.
func New(cfg config.GenerationConfig) (Generator, error) {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	switch cfg.Backend {
	case "", BackendRelay:
		return NewRelay(cfg.Endpoint, cfg.APIKey, &http.Client{Timeout: timeout}), nil
	case BackendGemini:
		return NewGemini(cfg.APIKey), nil
	case BackendOpenAI:
		return NewOpenAI(cfg.Endpoint, cfg.APIKey, &http.Client{Timeout: timeout}), nil
	default:
		return nil, fmt.Errorf("unknown generation backend %q", cfg.Backend)
	}
}
