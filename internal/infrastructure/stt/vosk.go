package stt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	vosk "github.com/alphacep/vosk-api/go"
	"go.uber.org/zap"

	apperrors "github.com/smartmeethq/meeting-assistant-api/errors"
	"github.com/smartmeethq/meeting-assistant-api/internal/infrastructure/audio"
	"github.com/smartmeethq/meeting-assistant-api/pkg/config"
)

// feedChunkBytes is 250 ms of 16-bit mono audio at 16 kHz
const feedChunkBytes = 8000

// VoskTranscriber runs a local Vosk speech model. The model is loaded once
// and shared read-only across requests; each Transcribe call creates its own
// recognizer because recognizers are not reentrant.
type VoskTranscriber struct {
	model       *vosk.VoskModel
	converter   *audio.Converter
	sampleRate  int
	vadEnabled  bool
	energyFloor float64
	logger      *zap.Logger
}

type voskResult struct {
	Text string `json:"text"`
}

// NewVoskTranscriber loads the Vosk model from cfg.VoskModelPath
func NewVoskTranscriber(cfg *config.SpeechConfig, converter *audio.Converter, logger *zap.Logger) (*VoskTranscriber, error) {
	if _, err := os.Stat(cfg.VoskModelPath); err != nil {
		return nil, fmt.Errorf("vosk model directory not found: %s", cfg.VoskModelPath)
	}

	vosk.SetLogLevel(-1) // suppress vosk's own logs

	model, err := vosk.NewModel(cfg.VoskModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load vosk model: %w", err)
	}

	if logger != nil {
		logger.Info("vosk model loaded",
			zap.String("path", cfg.VoskModelPath),
			zap.Int("sample_rate", cfg.SampleRate),
		)
	}

	return &VoskTranscriber{
		model:       model,
		converter:   converter,
		sampleRate:  cfg.SampleRate,
		vadEnabled:  cfg.VADEnabled,
		energyFloor: cfg.VADEnergyFloor,
		logger:      logger,
	}, nil
}

// Transcribe normalizes the file to mono 16 kHz PCM if needed, drops
// non-speech frames, and feeds the audio to a fresh recognizer. Recognized
// segments are joined with single spaces in order.
func (t *VoskTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	wav, err := t.loadPCM(ctx, path)
	if err != nil {
		return "", apperrors.ErrAudioConversionFailed(err)
	}

	pcm := wav.PCM
	if t.vadEnabled {
		pcm = audio.FilterSpeech(pcm, wav.SampleRate, t.energyFloor)
	}
	if len(pcm) == 0 {
		return "", apperrors.ErrEmptyTranscript()
	}

	rec, err := vosk.NewRecognizer(t.model, float64(wav.SampleRate))
	if err != nil {
		return "", apperrors.ErrTranscriptionFailed(fmt.Errorf("create recognizer: %w", err))
	}
	defer rec.Free()
	rec.SetWords(0)

	var segments []string
	appendSegment := func(resultJSON string) {
		var res voskResult
		if err := json.Unmarshal([]byte(resultJSON), &res); err != nil {
			return
		}
		if text := strings.TrimSpace(res.Text); text != "" {
			segments = append(segments, text)
		}
	}

	for start := 0; start < len(pcm); start += feedChunkBytes {
		if ctx.Err() != nil {
			return "", apperrors.ErrTranscriptionFailed(ctx.Err())
		}
		end := start + feedChunkBytes
		if end > len(pcm) {
			end = len(pcm)
		}
		if rec.AcceptWaveform(pcm[start:end]) != 0 {
			appendSegment(rec.Result())
		}
	}
	appendSegment(rec.FinalResult())

	transcript := strings.Join(segments, " ")
	if transcript == "" {
		return "", apperrors.ErrEmptyTranscript()
	}

	if t.logger != nil {
		t.logger.Info("transcription completed",
			zap.Int("segments", len(segments)),
			zap.Int("transcript_chars", len(transcript)),
		)
	}
	return transcript, nil
}

// loadPCM reads the file directly when it is already mono 16-bit PCM at the
// expected rate, otherwise converts through ffmpeg first. The converted file
// is removed before returning.
func (t *VoskTranscriber) loadPCM(ctx context.Context, path string) (*audio.WAVData, error) {
	if wav, err := audio.ReadWAV(path); err == nil && wav.Channels == 1 && wav.SampleRate == t.sampleRate {
		return wav, nil
	}

	wavPath, err := t.converter.ToWAV(ctx, path)
	if err != nil {
		return nil, err
	}
	defer os.Remove(wavPath)

	return audio.ReadWAV(wavPath)
}

// Close frees the underlying model
func (t *VoskTranscriber) Close() {
	if t.model != nil {
		t.model.Free()
		t.model = nil
	}
}
