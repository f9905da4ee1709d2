package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var errNoCandidates = errors.New("no response generated")

// Gemini calls the Google Gemini API directly.
type Gemini struct {
	apiKey string
	opts   []option.ClientOption

	mu     sync.Mutex
	client *genai.Client
}

// NewGemini returns a Gemini generator. The client is created on first use
// so that a missing key surfaces per request rather than at startup.
// opts are passed to the client after the API key, e.g. option.WithEndpoint.
func NewGemini(apiKey string, opts ...option.ClientOption) *Gemini {
	return &Gemini{apiKey: apiKey, opts: opts}
}

func (g *Gemini) initClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	opts := append([]option.ClientOption{option.WithAPIKey(g.apiKey)}, g.opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	g.client = client
	return client, nil
}

func (g *Gemini) Generate(ctx context.Context, req Request) (*Response, error) {
	if g.apiKey == "" {
		return nil, ErrMissingCredential
	}

	client, err := g.initClient(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.GenerativeModel(req.Model).GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 {
		return nil, errNoCandidates
	}

	var sb strings.Builder
	if cand := resp.Candidates[0]; cand.Content != nil {
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	if sb.Len() == 0 {
		return nil, errNoCandidates
	}
	return &Response{Text: sb.String()}, nil
}

// Close releases the underlying client, if one was created.
func (g *Gemini) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client == nil {
		return nil
	}
	err := g.client.Close()
	g.client = nil
	return err
}
