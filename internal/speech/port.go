package speech

import (
	"context"
	"errors"
	"fmt"
)

const DefaultVoiceID = "en-US-davis"

const (
	TranscriptQueued     = "queued"
	TranscriptProcessing = "processing"
	TranscriptCompleted  = "completed"
	TranscriptError      = "error"
)

// Synthesizer turns text into a hosted audio file and returns its URL.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) (audioURL string, err error)
}

// Transcriber turns a local audio file into text. A provider-side failure
// comes back as a Transcript with Status == TranscriptError, not as err.
type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (*Transcript, error)
}

type Transcript struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}

var ErrMalformedResponse = errors.New("malformed provider response")

// StatusError is a non-2xx answer from a provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error: %d - %s", e.Provider, e.StatusCode, e.Body)
}

// NetworkError is a failure to reach a provider at all.
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
