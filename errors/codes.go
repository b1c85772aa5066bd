package errors

// ErrorCode identifies the category of an application error
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_VALIDATION_FAILED
	ErrorCode_UPLOAD_TOO_LARGE
	ErrorCode_EMPTY_TRANSCRIPT
	ErrorCode_AUDIO_CONVERSION_FAILED
	ErrorCode_TRANSCRIPTION_FAILED
	ErrorCode_UPSTREAM_GENERATION_FAILED
	ErrorCode_UPSTREAM_TIMEOUT
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                    "UNKNOWN",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_VALIDATION_FAILED:          "VALIDATION_FAILED",
	ErrorCode_UPLOAD_TOO_LARGE:           "UPLOAD_TOO_LARGE",
	ErrorCode_EMPTY_TRANSCRIPT:           "EMPTY_TRANSCRIPT",
	ErrorCode_AUDIO_CONVERSION_FAILED:    "AUDIO_CONVERSION_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED:       "TRANSCRIPTION_FAILED",
	ErrorCode_UPSTREAM_GENERATION_FAILED: "UPSTREAM_GENERATION_FAILED",
	ErrorCode_UPSTREAM_TIMEOUT:           "UPSTREAM_TIMEOUT",
}

// String returns a stable name for the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
