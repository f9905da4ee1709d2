package generation

import (
	"context"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// OpenAI talks to any OpenAI-compatible chat completion endpoint.
type OpenAI struct {
	apiKey string
	client *openai.Client
}

// NewOpenAI returns a generator for baseURL; an empty baseURL targets api.openai.com.
func NewOpenAI(baseURL, apiKey string, httpClient *http.Client) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &OpenAI{apiKey: apiKey, client: openai.NewClientWithConfig(cfg)}
}

func (o *OpenAI) Generate(ctx context.Context, req Request) (*Response, error) {
	if o.apiKey == "" {
		return nil, ErrMissingCredential
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errNoCandidates
	}
	return &Response{Text: resp.Choices[0].Message.Content}, nil
}
