package speech

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperClient transcribes through the OpenAI audio API. It answers in one
// round trip, so the transcript is always completed when err is nil.
type WhisperClient struct {
	client *openai.Client
}

func NewWhisperClient(apiKey, baseURL string) *WhisperClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &WhisperClient{
		client: openai.NewClientWithConfig(cfg),
	}
}

func (c *WhisperClient) Transcribe(ctx context.Context, filePath string) (*Transcript, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, &StatusError{Provider: "OpenAI", StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return nil, &StatusError{Provider: "OpenAI", StatusCode: reqErr.HTTPStatusCode, Body: reqErr.Error()}
		}
		return nil, &NetworkError{Provider: "OpenAI", Err: err}
	}

	return &Transcript{Status: TranscriptCompleted, Text: resp.Text}, nil
}
