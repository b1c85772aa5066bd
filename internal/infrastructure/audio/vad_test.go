package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testRate = 16000

// pcmFrames builds count frames of 20 ms mono PCM with the given amplitude
func pcmFrames(count int, amplitude int16) []byte {
	samplesPerFrame := testRate * vadFrameMillis / 1000
	out := make([]byte, 0, count*samplesPerFrame*2)
	for i := 0; i < count*samplesPerFrame; i++ {
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, uint16(amplitude))
		out = append(out, b...)
	}
	return out
}

func TestFilterSpeech_DropsSilence(t *testing.T) {
	silence := pcmFrames(50, 0)

	out := FilterSpeech(silence, testRate, 250)

	assert.Empty(t, out)
}

func TestFilterSpeech_KeepsSpeech(t *testing.T) {
	speech := pcmFrames(50, 8000)

	out := FilterSpeech(speech, testRate, 250)

	assert.Equal(t, speech, out)
}

func TestFilterSpeech_KeepsHangoverAfterSpeech(t *testing.T) {
	speech := pcmFrames(10, 8000)
	silence := pcmFrames(20, 0)
	input := append(append([]byte{}, speech...), silence...)

	out := FilterSpeech(input, testRate, 250)

	frameBytes := testRate * vadFrameMillis / 1000 * 2
	// Speech frames plus the trailing hangover frames survive
	assert.Equal(t, (10+hangoverFrames)*frameBytes, len(out))
}

func TestFilterSpeech_ShortInputPassesThrough(t *testing.T) {
	tiny := []byte{0x00, 0x00, 0x01, 0x00}

	out := FilterSpeech(tiny, testRate, 250)

	assert.Equal(t, tiny, out)
}
