package delivery

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"

	"github.com/Vovarama1992/voice_agents/internal/ports"
	"github.com/Vovarama1992/voice_agents/internal/uploads"
)

const (
	audioFormField = "audio_file"

	maxJSONBody = 1 << 20
	// room for multipart boundaries and headers on top of the file itself
	multipartSlack  = 1 << 20
	multipartMemory = 32 << 20
)

type VoiceHandler struct {
	svc ports.VoiceService
	log *logger.ZapLogger
}

func NewVoiceHandler(svc ports.VoiceService, log *logger.ZapLogger) *VoiceHandler {
	return &VoiceHandler{
		svc: svc,
		log: log,
	}
}

// POST /generate-audio
func (h *VoiceHandler) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	var req ports.SynthesisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, "generate-audio", http.StatusBadRequest, "invalid json: "+err.Error(), err)
		return
	}

	out, err := h.svc.GenerateAudio(r.Context(), req)
	if err != nil {
		writeDomainError(w, h.log, "generate-audio", err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// POST /upload-audio
func (h *VoiceHandler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	up, done, ok := h.readAudioFile(w, r, "upload-audio")
	if !ok {
		return
	}
	defer done()

	out, err := h.svc.UploadAudio(r.Context(), up)
	if err != nil {
		writeDomainError(w, h.log, "upload-audio", err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// POST /transcribe-file
func (h *VoiceHandler) TranscribeFile(w http.ResponseWriter, r *http.Request) {
	up, done, ok := h.readAudioFile(w, r, "transcribe-file")
	if !ok {
		return
	}
	defer done()

	out, err := h.svc.TranscribeFile(r.Context(), up)
	if err != nil {
		writeDomainError(w, h.log, "transcribe-file", err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// GET /health
func (h *VoiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Health(r.Context()))
}

// DELETE /cleanup-uploads
func (h *VoiceHandler) CleanupUploads(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.CleanupUploads(r.Context())
	if err != nil {
		writeDomainError(w, h.log, "cleanup-uploads", err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// readAudioFile pulls the audio_file part out of a multipart body. The
// returned func releases the part and any spill files of the form.
func (h *VoiceHandler) readAudioFile(w http.ResponseWriter, r *http.Request, route string) (ports.AudioUpload, func(), bool) {
	r.Body = http.MaxBytesReader(w, r.Body, uploads.MaxSize+multipartSlack)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			msg := fmt.Sprintf("File too large (max %s)", humanize.IBytes(uint64(uploads.MaxSize)))
			writeError(w, h.log, route, http.StatusRequestEntityTooLarge, msg, err)
			return ports.AudioUpload{}, nil, false
		}
		writeError(w, h.log, route, http.StatusBadRequest, "invalid multipart: "+err.Error(), err)
		return ports.AudioUpload{}, nil, false
	}

	file, header, err := r.FormFile(audioFormField)
	if err != nil {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
		writeError(w, h.log, route, http.StatusBadRequest, "missing file field "+audioFormField, err)
		return ports.AudioUpload{}, nil, false
	}

	done := func() {
		file.Close()
		_ = r.MultipartForm.RemoveAll()
	}

	return ports.AudioUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, done, true
}
