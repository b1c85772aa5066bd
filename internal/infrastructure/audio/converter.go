package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/smartmeethq/meeting-assistant-api/pkg/executor"
)

// Converter normalizes uploaded audio into the format the speech model
// expects: single-channel, 16 kHz, 16-bit PCM WAV. The transform changes
// only the container and sampling, never the content.
type Converter struct {
	ffmpegPath string
	sampleRate int
	exec       executor.Executor
	logger     *zap.Logger
}

// NewConverter creates a Converter that shells out to ffmpeg
func NewConverter(ffmpegPath string, sampleRate int, exec executor.Executor, logger *zap.Logger) *Converter {
	return &Converter{
		ffmpegPath: ffmpegPath,
		sampleRate: sampleRate,
		exec:       exec,
		logger:     logger,
	}
}

// ToWAV converts srcPath to a mono 16-bit PCM WAV next to the source file
// and returns the output path. The caller owns deletion of both files.
func (c *Converter) ToWAV(ctx context.Context, srcPath string) (string, error) {
	outPath := strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + "_pcm.wav"

	args := []string{
		"-i", srcPath,
		"-vn",
		"-ar", fmt.Sprintf("%d", c.sampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		outPath,
	}

	if _, err := c.exec.Execute(ctx, c.ffmpegPath, args...); err != nil {
		// ffmpeg may have created a partial output before failing
		os.Remove(outPath)
		return "", fmt.Errorf("ffmpeg convert: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("audio converted",
			zap.String("src", srcPath),
			zap.String("out", outPath),
			zap.Int("sample_rate", c.sampleRate),
		)
	}
	return outPath, nil
}
