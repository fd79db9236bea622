package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const DefaultPollInterval = 3 * time.Second

// AssemblyAIClient uploads the file, creates a transcript job and polls it
// until it settles. There is no local deadline: only ctx stops the wait.
type AssemblyAIClient struct {
	apiKey       string
	baseURL      string
	client       *http.Client
	PollInterval time.Duration
}

func NewAssemblyAIClient(apiKey, baseURL string) *AssemblyAIClient {
	return &AssemblyAIClient{
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{},
		PollInterval: DefaultPollInterval,
	}
}

func (c *AssemblyAIClient) Transcribe(ctx context.Context, filePath string) (*Transcript, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	var uploaded struct {
		UploadURL string `json:"upload_url"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/upload", f, "application/octet-stream", &uploaded); err != nil {
		return nil, err
	}
	if uploaded.UploadURL == "" {
		return nil, fmt.Errorf("%w: empty upload_url", ErrMalformedResponse)
	}

	payload, err := json.Marshal(map[string]string{"audio_url": uploaded.UploadURL})
	if err != nil {
		return nil, err
	}

	var tr Transcript
	if err := c.do(ctx, http.MethodPost, "/v2/transcript", bytes.NewReader(payload), "application/json", &tr); err != nil {
		return nil, err
	}
	if tr.ID == "" {
		return nil, fmt.Errorf("%w: transcript without id", ErrMalformedResponse)
	}

	return c.wait(ctx, &tr)
}

func (c *AssemblyAIClient) wait(ctx context.Context, tr *Transcript) (*Transcript, error) {
	ticker := time.NewTicker(c.PollInterval)
	defer ticker.Stop()

	for tr.Status != TranscriptCompleted && tr.Status != TranscriptError {
		select {
		case <-ctx.Done():
			return nil, &NetworkError{Provider: "AssemblyAI", Err: ctx.Err()}
		case <-ticker.C:
		}

		var next Transcript
		if err := c.do(ctx, http.MethodGet, "/v2/transcript/"+tr.ID, nil, "", &next); err != nil {
			return nil, err
		}
		tr = &next
	}

	return tr, nil
}

func (c *AssemblyAIClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("authorization", c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{Provider: "AssemblyAI", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Provider: "AssemblyAI", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Provider: "AssemblyAI", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode assemblyai %s: %v", ErrMalformedResponse, path, err)
	}
	return nil
}
