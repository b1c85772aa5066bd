package stt

import (
	"context"
)

// Transcriber converts an audio file on disk into recognized text.
//
// Implementations must join every non-empty recognized segment with a single
// space, preserving order, and must return an empty-transcript error when no
// speech was recognized. The source file is never deleted by the
// transcriber; cleanup belongs to the caller that created it.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}
