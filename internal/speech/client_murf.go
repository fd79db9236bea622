package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const MurfTimeout = 30 * time.Second

type MurfClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewMurfClient(apiKey, baseURL string) *MurfClient {
	return &MurfClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: MurfTimeout},
	}
}

type murfRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
}

type murfResponse struct {
	AudioFile string `json:"audioFile"`
}

// TEXT → SPEECH (hosted by Murf, we only get the URL back)
func (c *MurfClient) Synthesize(ctx context.Context, text, voiceID string) (string, error) {
	if voiceID == "" {
		voiceID = DefaultVoiceID
	}

	payload, err := json.Marshal(murfRequest{Text: text, VoiceID: voiceID})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/speech/generate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &NetworkError{Provider: "Murf", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Provider: "Murf", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Provider: "Murf", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out murfResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: decode murf: %v", ErrMalformedResponse, err)
	}

	return out.AudioFile, nil
}
