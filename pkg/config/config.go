package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Speech SpeechConfig
	LLM    LLMConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Port            string   `envconfig:"PORT" default:"8080"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8501"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// UploadConfig bounds incoming audio uploads
type UploadConfig struct {
	MaxBytes int64  `envconfig:"UPLOAD_MAX_BYTES" default:"12582912"`
	TempDir  string `envconfig:"UPLOAD_TEMP_DIR" default:""`
}

// SpeechConfig selects and configures the speech-recognition engine
type SpeechConfig struct {
	// Engine is "vosk" (local model) or "assemblyai" (remote API)
	Engine         string  `envconfig:"STT_ENGINE" default:"vosk"`
	VoskModelPath  string  `envconfig:"VOSK_MODEL_PATH" default:"models/vosk-model-small-en-us-0.15"`
	SampleRate     int     `envconfig:"STT_SAMPLE_RATE" default:"16000"`
	FFmpegPath     string  `envconfig:"FFMPEG_PATH" default:"ffmpeg"`
	AssemblyAPIKey string  `envconfig:"ASSEMBLYAI_API_KEY" default:""`
	VADEnabled     bool    `envconfig:"STT_VAD_ENABLED" default:"true"`
	VADEnergyFloor float64 `envconfig:"STT_VAD_ENERGY_FLOOR" default:"250"`
}

// LLMConfig configures the generative-language-model provider
type LLMConfig struct {
	// Provider is "gemini" or "groq"
	Provider     string        `envconfig:"LLM_PROVIDER" default:"gemini"`
	GeminiAPIKey string        `envconfig:"GEMINI_API_KEY" default:""`
	GeminiModel  string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash-lite"`
	GroqAPIKey   string        `envconfig:"GROQ_API_KEY" default:""`
	GroqBaseURL  string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	GroqModel    string        `envconfig:"GROQ_MODEL" default:"llama-3.1-70b-versatile"`
	Timeout      time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
	MaxRetryTime time.Duration `envconfig:"LLM_MAX_RETRY_TIME" default:"30s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration. The process must not start without
// a credential for the selected language-model provider.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "gemini":
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	case "groq":
		if c.LLM.GroqAPIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q (expected gemini or groq)", c.LLM.Provider)
	}

	switch c.Speech.Engine {
	case "vosk":
		if c.Speech.VoskModelPath == "" {
			return fmt.Errorf("VOSK_MODEL_PATH is required when STT_ENGINE=vosk")
		}
	case "assemblyai":
		if c.Speech.AssemblyAPIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is required when STT_ENGINE=assemblyai")
		}
	default:
		return fmt.Errorf("unknown STT_ENGINE %q (expected vosk or assemblyai)", c.Speech.Engine)
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}

	return nil
}

// Addr returns the host:port the server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
