package ports

import (
	"context"
	"io"
)

type SynthesisRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id,omitempty"`
}

type SynthesisResult struct {
	Success  bool   `json:"success"`
	AudioURL string `json:"audio_url,omitempty"`
	Message  string `json:"message"`
}

// AudioUpload is one multipart file as declared by the client.
type AudioUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type UploadResult struct {
	Success     bool   `json:"success"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
	Message     string `json:"message"`
}

type TranscriptionResult struct {
	Success       bool   `json:"success"`
	Transcription string `json:"transcription"`
	Message       string `json:"message"`
}

type HealthReport struct {
	Status                string `json:"status"`
	Message               string `json:"message"`
	MurfAPIConfigured     bool   `json:"murf_api_configured"`
	AssemblyAIConfigured  bool   `json:"assemblyai_configured"`
	OpenAIConfigured      bool   `json:"openai_configured"`
	TranscriptionProvider string `json:"transcription_provider"`
}

type CleanupResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count"`
}

type VoiceService interface {
	GenerateAudio(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error)
	UploadAudio(ctx context.Context, up AudioUpload) (*UploadResult, error)
	// TranscribeFile never leaves its temp file behind, whatever the outcome.
	TranscribeFile(ctx context.Context, up AudioUpload) (*TranscriptionResult, error)
	// Health makes no outbound calls.
	Health(ctx context.Context) *HealthReport
	CleanupUploads(ctx context.Context) (*CleanupResult, error)
}
