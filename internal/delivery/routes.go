package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// NewRouter builds the full HTTP surface: CORS for the browser frontend,
// request ids, then the routes.
func NewRouter(h *VoiceHandler, f *FrontendHandler, rateLimitPerMinute int) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}),
	)

	RegisterRoutes(r, h, f, rateLimitPerMinute)
	return r
}

func RegisterRoutes(r chi.Router, h *VoiceHandler, f *FrontendHandler, rateLimitPerMinute int) {
	// --- pages / probes ---
	r.Group(func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		pr.Get("/", f.Index)
		if f.HasStatic() {
			pr.Handle("/static/*", f.Static())
		}
		pr.Get("/health", h.Health)
	})

	// --- api ---
	r.Group(func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)
		if rateLimitPerMinute > 0 {
			pr.Use(httprate.LimitByIP(rateLimitPerMinute, time.Minute))
		}

		pr.Post("/generate-audio", h.GenerateAudio)
		pr.Post("/upload-audio", h.UploadAudio)
		pr.Post("/transcribe-file", h.TranscribeFile)
		pr.Delete("/cleanup-uploads", h.CleanupUploads)
	})
}
