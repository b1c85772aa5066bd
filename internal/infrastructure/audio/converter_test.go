package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor stands in for ffmpeg. Its run hook receives the argv so
// tests can create the output file before reporting failure.
type fakeExecutor struct {
	run func(args []string) error
}

func (f *fakeExecutor) Execute(_ context.Context, _ string, args ...string) (string, error) {
	if f.run != nil {
		return "", f.run(args)
	}
	return "", nil
}

func TestToWAV_Success(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "upload.mp3")
	require.NoError(t, os.WriteFile(src, []byte("audio"), 0o644))

	exec := &fakeExecutor{run: func(args []string) error {
		return os.WriteFile(args[len(args)-1], []byte("wav"), 0o644)
	}}
	conv := NewConverter("ffmpeg", testRate, exec, nil)

	out, err := conv.ToWAV(context.Background(), src)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "upload_pcm.wav"), out)
	assert.FileExists(t, out)
}

func TestToWAV_FailureRemovesPartialOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "upload.mp3")
	require.NoError(t, os.WriteFile(src, []byte("audio"), 0o644))

	// A corrupt stream can make ffmpeg fail after the output file exists
	exec := &fakeExecutor{run: func(args []string) error {
		if err := os.WriteFile(args[len(args)-1], []byte("partial"), 0o644); err != nil {
			return err
		}
		return errors.New("exit status 1")
	}}
	conv := NewConverter("ffmpeg", testRate, exec, nil)

	_, err := conv.ToWAV(context.Background(), src)

	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "upload_pcm.wav"))
	assert.FileExists(t, src)
}

func TestToWAV_FailureWithoutOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "upload.mp3")
	require.NoError(t, os.WriteFile(src, []byte("audio"), 0o644))

	exec := &fakeExecutor{run: func([]string) error {
		return errors.New("exit status 1")
	}}
	conv := NewConverter("ffmpeg", testRate, exec, nil)

	_, err := conv.ToWAV(context.Background(), src)

	require.Error(t, err)
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Len(t, entries, 1)
	assert.Equal(t, "upload.mp3", entries[0].Name())
}
