package speech

import (
	"context"

	"github.com/Vovarama1992/voice_agents/internal/config"
)

// Service bundles one synthesizer and one transcriber behind a single value.
type Service struct {
	tts Synthesizer
	stt Transcriber
}

func NewService(tts Synthesizer, stt Transcriber) *Service {
	return &Service{
		tts: tts,
		stt: stt,
	}
}

// NewServiceFromConfig wires Murf plus the configured transcription provider.
// Clients are built even without keys; callers check credentials per request.
func NewServiceFromConfig(cfg *config.Config) *Service {
	var stt Transcriber
	switch cfg.TranscriptionProvider {
	case config.ProviderOpenAI:
		stt = NewWhisperClient(cfg.OpenAIAPIKey, cfg.OpenAIURL)
	default:
		stt = NewAssemblyAIClient(cfg.AssemblyAIAPIKey, cfg.AssemblyAIURL)
	}

	return NewService(NewMurfClient(cfg.MurfAPIKey, cfg.MurfURL), stt)
}

func (s *Service) Synthesize(ctx context.Context, text, voiceID string) (string, error) {
	return s.tts.Synthesize(ctx, text, voiceID)
}

func (s *Service) Transcribe(ctx context.Context, filePath string) (*Transcript, error) {
	return s.stt.Transcribe(ctx, filePath)
}
