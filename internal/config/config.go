// Package config holds the process-wide settings, read once at startup.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderAssemblyAI = "assemblyai"
	ProviderOpenAI     = "openai"

	DefaultMurfURL       = "https://api.murf.ai"
	DefaultAssemblyAIURL = "https://api.assemblyai.com"
)

type Config struct {
	Port string

	MurfAPIKey       string
	AssemblyAIAPIKey string
	OpenAIAPIKey     string

	// assemblyai | openai
	TranscriptionProvider string

	MurfURL       string
	AssemblyAIURL string

	// empty means the go-openai default
	OpenAIURL string

	UploadsDir string
	StaticDir  string

	RateLimitPerMinute int
	ShutdownTimeout    time.Duration

	TelegramAlertToken  string
	TelegramAlertChatID int64
}

// Load reads .env (if any) and then the environment. Missing provider keys
// are not an error: the endpoints that need them refuse at call time.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8000"),
		MurfAPIKey:            strings.TrimSpace(os.Getenv("MURF_API_KEY")),
		AssemblyAIAPIKey:      strings.TrimSpace(os.Getenv("ASSEMBLYAI_API_KEY")),
		OpenAIAPIKey:          strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		TranscriptionProvider: strings.ToLower(getEnv("TRANSCRIPTION_PROVIDER", ProviderAssemblyAI)),
		MurfURL:               strings.TrimRight(getEnv("MURF_API_URL", DefaultMurfURL), "/"),
		AssemblyAIURL:         strings.TrimRight(getEnv("ASSEMBLYAI_API_URL", DefaultAssemblyAIURL), "/"),
		OpenAIURL:             getEnv("OPENAI_API_URL", ""),
		UploadsDir:            getEnv("UPLOADS_DIR", "uploads"),
		StaticDir:             getEnv("STATIC_DIR", "../frontend"),
		RateLimitPerMinute:    getEnvInt("RATE_LIMIT_PER_MINUTE", 0),
		ShutdownTimeout:       time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		TelegramAlertToken:    os.Getenv("TELEGRAM_ALERT_BOT_TOKEN"),
		TelegramAlertChatID:   int64(getEnvInt("TELEGRAM_ALERT_CHAT_ID", 0)),
	}

	if cfg.TranscriptionProvider != ProviderOpenAI {
		cfg.TranscriptionProvider = ProviderAssemblyAI
	}

	return cfg
}

// TranscriptionKey returns the credential of the selected transcription provider.
func (c *Config) TranscriptionKey() string {
	if c.TranscriptionProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.AssemblyAIAPIKey
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
