package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBody = 4 << 10

var errEmptyText = errors.New("invalid response from generation service: missing text")

type relayRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

type relayResponse struct {
	Text string `json:"text"`
}

// Relay posts prompts as JSON to a generation gateway and expects {"text": ...} back.
type Relay struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewRelay returns a relay generator. A nil client gets a default one.
// Outgoing requests are traced with otelhttp.
func NewRelay(endpoint, apiKey string, client *http.Client) *Relay {
	if client == nil {
		client = &http.Client{}
	}
	c := *client
	base := c.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.Transport = otelhttp.NewTransport(base)
	return &Relay{endpoint: endpoint, apiKey: apiKey, client: &c}
}

func (r *Relay) Generate(ctx context.Context, req Request) (*Response, error) {
	if r.apiKey == "" {
		return nil, ErrMissingCredential
	}

	body, err := json.Marshal(relayRequest{Prompt: req.Prompt, Model: req.Model})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call generation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var out relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Text == "" {
		return nil, errEmptyText
	}
	return &Response{Text: out.Text}, nil
}
