package audio

import (
	"encoding/binary"
	"fmt"
	"os"
)

// WAVData holds decoded PCM audio from a RIFF/WAVE file
type WAVData struct {
	PCM        []byte
	SampleRate int
	Channels   int
}

// ReadWAV parses a 16-bit PCM WAV file and returns its raw sample data.
// Compressed or non-PCM encodings are rejected; such files must go through
// the converter first.
func ReadWAV(path string) (*WAVData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wav file: %w", err)
	}

	if len(raw) < 44 || string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE file")
	}

	var (
		data       []byte
		sampleRate int
		channels   int
		haveFmt    bool
	)

	// Walk the chunk list; fmt must precede data
	offset := 12
	for offset+8 <= len(raw) {
		chunkID := string(raw[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(raw[offset+4 : offset+8]))
		body := offset + 8
		if body+chunkSize > len(raw) {
			chunkSize = len(raw) - body
		}

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, fmt.Errorf("malformed fmt chunk")
			}
			audioFormat := binary.LittleEndian.Uint16(raw[body : body+2])
			if audioFormat != 1 {
				return nil, fmt.Errorf("unsupported wav encoding %d (want PCM)", audioFormat)
			}
			channels = int(binary.LittleEndian.Uint16(raw[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(raw[body+4 : body+8]))
			bitsPerSample := binary.LittleEndian.Uint16(raw[body+14 : body+16])
			if bitsPerSample != 16 {
				return nil, fmt.Errorf("unsupported bit depth %d (want 16)", bitsPerSample)
			}
			haveFmt = true
		case "data":
			data = raw[body : body+chunkSize]
		}

		// Chunks are word-aligned
		if chunkSize%2 == 1 {
			chunkSize++
		}
		offset = body + chunkSize
	}

	if !haveFmt {
		return nil, fmt.Errorf("missing fmt chunk")
	}
	if data == nil {
		return nil, fmt.Errorf("missing data chunk")
	}

	return &WAVData{PCM: data, SampleRate: sampleRate, Channels: channels}, nil
}
