package audio

import (
	"github.com/gopxl/beep"

	"ebiten-pong/systems"
)

// Format is signed 16-bit little-endian stereo, the layout ebiten's audio
// context expects
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// EncodePCM drains s into interleaved PCM bytes
func EncodePCM(s beep.Streamer) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, Format.Width())
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			Format.EncodeSigned(frame, sample)
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	return out, s.Err()
}

// TonePCM synthesizes t at volume into PCM bytes
func TonePCM(t systems.Tone, volume float64) ([]byte, error) {
	s, err := Streamer(t, volume)
	if err != nil {
		return nil, err
	}
	return EncodePCM(s)
}
