package stt

import (
	"context"
	"fmt"
	"os"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	apperrors "github.com/smartmeethq/meeting-assistant-api/errors"
	"github.com/smartmeethq/meeting-assistant-api/pkg/config"
)

// AssemblyAITranscriber is the remote speech engine. It uploads the file
// as-is; AssemblyAI handles container and sample-rate conversion itself.
type AssemblyAITranscriber struct {
	client *aai.Client
	logger *zap.Logger
}

// NewAssemblyAITranscriber creates the remote engine from config
func NewAssemblyAITranscriber(cfg *config.SpeechConfig, logger *zap.Logger) *AssemblyAITranscriber {
	return &AssemblyAITranscriber{
		client: aai.NewClient(cfg.AssemblyAPIKey),
		logger: logger,
	}
}

// Transcribe uploads the audio file and polls until the transcript is ready
func (t *AssemblyAITranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", apperrors.ErrUnreadableUpload(err)
	}
	defer f.Close()

	transcript, err := t.client.Transcripts.TranscribeFromReader(ctx, f, nil)
	if err != nil {
		return "", apperrors.ErrTranscriptionFailed(fmt.Errorf("assemblyai: %w", err))
	}

	if transcript.Text == nil {
		return "", apperrors.ErrEmptyTranscript()
	}

	// Collapse whitespace so the output matches the segment-join contract
	text := strings.Join(strings.Fields(*transcript.Text), " ")
	if text == "" {
		return "", apperrors.ErrEmptyTranscript()
	}

	if t.logger != nil {
		t.logger.Info("remote transcription completed",
			zap.Int("transcript_chars", len(text)),
		)
	}
	return text, nil
}
