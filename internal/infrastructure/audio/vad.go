package audio

import (
	"encoding/binary"
	"math"
)

const vadFrameMillis = 20

// hangoverFrames keeps a few trailing frames after speech ends so word
// endings are not clipped mid-phoneme.
const hangoverFrames = 3

// FilterSpeech drops non-speech frames from 16-bit mono PCM using an RMS
// energy gate over 20 ms frames. Feeding only voiced audio to the speech
// model reduces hallucinated text on silence and background noise.
func FilterSpeech(pcm []byte, sampleRate int, energyFloor float64) []byte {
	if sampleRate <= 0 || len(pcm) < 2 {
		return pcm
	}

	frameBytes := sampleRate * vadFrameMillis / 1000 * 2
	if frameBytes <= 0 || len(pcm) <= frameBytes {
		return pcm
	}

	out := make([]byte, 0, len(pcm))
	hangover := 0

	for start := 0; start < len(pcm); start += frameBytes {
		end := start + frameBytes
		if end > len(pcm) {
			end = len(pcm)
		}
		frame := pcm[start:end]

		if frameRMS(frame) >= energyFloor {
			out = append(out, frame...)
			hangover = hangoverFrames
		} else if hangover > 0 {
			out = append(out, frame...)
			hangover--
		}
	}

	return out
}

// frameRMS computes root-mean-square amplitude of a 16-bit LE PCM frame
func frameRMS(frame []byte) float64 {
	n := len(frame) / 2
	if n == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(frame[2*i : 2*i+2]))
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(n))
}
