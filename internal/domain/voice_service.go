package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"

	"github.com/Vovarama1992/voice_agents/internal/config"
	"github.com/Vovarama1992/voice_agents/internal/error_notificator"
	"github.com/Vovarama1992/voice_agents/internal/ports"
	"github.com/Vovarama1992/voice_agents/internal/speech"
	"github.com/Vovarama1992/voice_agents/internal/uploads"
)

const (
	ServiceName  = "voice_agents"
	alertTimeout = 10 * time.Second
)

type voiceService struct {
	cfg     *config.Config
	tts     speech.Synthesizer
	stt     speech.Transcriber
	uploads *uploads.Service
	errs    *error_notificator.Service
	log     *logger.ZapLogger
}

func NewVoiceService(
	cfg *config.Config,
	tts speech.Synthesizer,
	stt speech.Transcriber,
	uploadsSvc *uploads.Service,
	errs *error_notificator.Service,
	log *logger.ZapLogger,
) ports.VoiceService {
	return &voiceService{
		cfg:     cfg,
		tts:     tts,
		stt:     stt,
		uploads: uploadsSvc,
		errs:    errs,
		log:     log,
	}
}

// =========================================================
// TEXT → SPEECH
// =========================================================

func (s *voiceService) GenerateAudio(ctx context.Context, req ports.SynthesisRequest) (*ports.SynthesisResult, error) {
	// text first: empty input is a validation error whatever the config
	if strings.TrimSpace(req.Text) == "" {
		return nil, newError(KindValidation, http.StatusBadRequest, "Text cannot be empty", nil)
	}
	if s.cfg.MurfAPIKey == "" {
		return nil, newError(KindConfiguration, http.StatusInternalServerError, "Murf API key not configured", nil)
	}

	voiceID := strings.TrimSpace(req.VoiceID)
	if voiceID == "" {
		voiceID = speech.DefaultVoiceID
	}

	audioURL, err := s.tts.Synthesize(ctx, req.Text, voiceID)
	if err != nil {
		return nil, s.upstreamFailure(ctx, "generate-audio", err)
	}
	if audioURL == "" {
		err := newError(KindUpstreamProtocol, http.StatusBadGateway, "No audio URL returned from Murf API", nil)
		s.alert(ctx, err, "generate-audio")
		return nil, err
	}

	return &ports.SynthesisResult{
		Success:  true,
		AudioURL: audioURL,
		Message:  "Audio generated successfully",
	}, nil
}

// =========================================================
// UPLOADS
// =========================================================

func (s *voiceService) UploadAudio(_ context.Context, up ports.AudioUpload) (*ports.UploadResult, error) {
	if err := s.uploads.Validate(up.ContentType); err != nil {
		return nil, newError(KindUnsupportedMediaType, http.StatusUnsupportedMediaType,
			"Unsupported file type: "+up.ContentType, err)
	}

	data, err := readUpload(up)
	if err != nil {
		return nil, err
	}

	name, _, err := s.uploads.Persist("", up.Filename, "", data)
	if err != nil {
		return nil, newError(KindIO, http.StatusInternalServerError, "Upload failed: "+err.Error(), err)
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("stored upload %s (%s, %s)", name, up.ContentType, humanize.IBytes(uint64(len(data)))),
		Service: ServiceName,
	})

	return &ports.UploadResult{
		Success:     true,
		Filename:    name,
		ContentType: up.ContentType,
		Size:        len(data),
		Message:     "File uploaded successfully",
	}, nil
}

// =========================================================
// SPEECH → TEXT
// =========================================================

func (s *voiceService) TranscribeFile(ctx context.Context, up ports.AudioUpload) (*ports.TranscriptionResult, error) {
	if s.cfg.TranscriptionKey() == "" {
		return nil, newError(KindConfiguration, http.StatusInternalServerError,
			s.providerName()+" API key not configured", nil)
	}

	if err := s.uploads.Validate(up.ContentType); err != nil {
		return nil, newError(KindUnsupportedMediaType, http.StatusUnsupportedMediaType,
			"Unsupported file type for transcription: "+up.ContentType, err)
	}

	data, err := readUpload(up)
	if err != nil {
		return nil, err
	}

	name, path, err := s.uploads.Persist(uploads.TranscribePrefix, up.Filename, ".tmp", data)
	if err != nil {
		return nil, newError(KindIO, http.StatusInternalServerError,
			"Failed to save file for transcription: "+err.Error(), err)
	}
	defer s.removeTemp(name)

	tr, err := s.stt.Transcribe(ctx, path)
	if err != nil {
		return nil, s.upstreamFailure(ctx, "transcribe-file", err)
	}

	if tr.Status == speech.TranscriptError {
		reason := tr.Error
		if reason == "" {
			reason = "Unknown error"
		}
		err := newError(KindTranscription, http.StatusBadGateway, "Transcription failed: "+reason, nil)
		s.alert(ctx, err, "transcribe-file")
		return nil, err
	}

	return &ports.TranscriptionResult{
		Success:       true,
		Transcription: tr.Text,
		Message:       "Transcription completed successfully",
	}, nil
}

// =========================================================
// MAINTENANCE
// =========================================================

func (s *voiceService) Health(_ context.Context) *ports.HealthReport {
	return &ports.HealthReport{
		Status:                "healthy",
		Message:               "Voice Agents API is running",
		MurfAPIConfigured:     s.cfg.MurfAPIKey != "",
		AssemblyAIConfigured:  s.cfg.AssemblyAIAPIKey != "",
		OpenAIConfigured:      s.cfg.OpenAIAPIKey != "",
		TranscriptionProvider: s.cfg.TranscriptionProvider,
	}
}

func (s *voiceService) CleanupUploads(_ context.Context) (*ports.CleanupResult, error) {
	deleted, err := s.uploads.Purge()
	if err != nil {
		return nil, newError(KindIO, http.StatusInternalServerError, "Cleanup failed: "+err.Error(), err)
	}

	return &ports.CleanupResult{
		Success:      true,
		Message:      fmt.Sprintf("Cleaned up %d files", deleted),
		DeletedCount: deleted,
	}, nil
}

// ---------------------------------------------------------

func readUpload(up ports.AudioUpload) ([]byte, error) {
	if up.Body == nil {
		return nil, newError(KindValidation, http.StatusBadRequest, "Missing file body", nil)
	}

	data, err := uploads.ReadAll(up.Body)
	if errors.Is(err, uploads.ErrTooLarge) {
		return nil, newError(KindPayloadTooLarge, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File too large (max %s)", humanize.IBytes(uint64(uploads.MaxSize))), err)
	}
	if err != nil {
		return nil, newError(KindValidation, http.StatusBadRequest, "Failed to read upload: "+err.Error(), err)
	}
	return data, nil
}

func (s *voiceService) removeTemp(name string) {
	if err := s.uploads.Remove(name); err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "failed to remove transcription temp file " + name,
			Service: ServiceName,
			Error:   err,
		})
	}
}

func (s *voiceService) providerName() string {
	if s.cfg.TranscriptionProvider == config.ProviderOpenAI {
		return "OpenAI"
	}
	return "AssemblyAI"
}

// upstreamFailure turns an adapter error into a domain error and alerts the operator.
func (s *voiceService) upstreamFailure(ctx context.Context, op string, err error) error {
	var (
		statusErr *speech.StatusError
		netErr    *speech.NetworkError
		out       *Error
	)

	switch {
	case errors.As(err, &statusErr):
		status := statusErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		out = newError(KindUpstream, status, statusErr.Error(), err)
	case errors.As(err, &netErr):
		out = newError(KindNetwork, http.StatusBadGateway, "Network error: "+netErr.Error(), err)
	case errors.Is(err, speech.ErrMalformedResponse):
		out = newError(KindUpstreamProtocol, http.StatusBadGateway, err.Error(), err)
	default:
		out = newError(KindInternal, http.StatusInternalServerError, "Unexpected error: "+err.Error(), err)
	}

	s.alert(ctx, out, op)
	return out
}

func (s *voiceService) alert(ctx context.Context, err error, op string) {
	if !s.errs.Enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
		defer cancel()

		if nErr := s.errs.Notify(ctx, err, op); nErr != nil {
			s.log.Log(logger.LogEntry{
				Level:   "warn",
				Message: "operator alert failed",
				Service: ServiceName,
				Error:   nErr,
			})
		}
	}()
}
