package config

import (
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processEnv(t *testing.T) *Config {
	t.Helper()
	var cfg Config
	require.NoError(t, envconfig.Process("", &cfg))
	return &cfg
}

func TestValidate_RequiresGeminiKey(t *testing.T) {
	cfg := processEnv(t)
	cfg.LLM.Provider = "gemini"
	cfg.LLM.GeminiAPIKey = ""

	err := cfg.Validate()
	assert.ErrorContains(t, err, "GEMINI_API_KEY is required")
}

func TestValidate_RequiresGroqKeyWhenSelected(t *testing.T) {
	cfg := processEnv(t)
	cfg.LLM.Provider = "groq"
	cfg.LLM.GroqAPIKey = ""

	err := cfg.Validate()
	assert.ErrorContains(t, err, "GROQ_API_KEY is required")
}

func TestValidate_RejectsUnknownProvider(t *testing.T) {
	cfg := processEnv(t)
	cfg.LLM.Provider = "gpt-from-scratch"

	err := cfg.Validate()
	assert.ErrorContains(t, err, "unknown LLM_PROVIDER")
}

func TestValidate_RequiresAssemblyKeyWhenSelected(t *testing.T) {
	cfg := processEnv(t)
	cfg.LLM.GeminiAPIKey = "key"
	cfg.Speech.Engine = "assemblyai"
	cfg.Speech.AssemblyAPIKey = ""

	err := cfg.Validate()
	assert.ErrorContains(t, err, "ASSEMBLYAI_API_KEY is required")
}

func TestValidate_RejectsNonPositiveUploadLimit(t *testing.T) {
	cfg := processEnv(t)
	cfg.LLM.GeminiAPIKey = "key"
	cfg.Upload.MaxBytes = 0

	err := cfg.Validate()
	assert.ErrorContains(t, err, "UPLOAD_MAX_BYTES must be positive")
}

func TestDefaults(t *testing.T) {
	cfg := processEnv(t)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(12582912), cfg.Upload.MaxBytes)
	assert.Equal(t, "vosk", cfg.Speech.Engine)
	assert.Equal(t, 16000, cfg.Speech.SampleRate)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
}

func TestAddr(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "9000"

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
}
