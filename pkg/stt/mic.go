package stt

import (
	"math"
	"time"

	"github.com/gordonklaus/portaudio"
)

// Capture parameters. 16kHz mono PCM in 20ms frames; an RMS energy gate
// decides when speech starts and when a trailing silence ends the phrase.
const (
	sampleRate       = 16000
	frameSize        = 320 // 20ms at 16kHz
	frameDuration    = 20 * time.Millisecond
	silenceThreshRMS = 0.015
	trailingSilence  = 600 * time.Millisecond
)

// microphone wraps a portaudio input stream. Not safe for concurrent use;
// the assistant runs exactly one capture at a time.
type microphone struct {
	initialized bool
}

func newMicrophone() (*microphone, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, &BackendError{Op: "init audio", Err: err}
	}
	return &microphone{initialized: true}, nil
}

func (m *microphone) close() error {
	if !m.initialized {
		return nil
	}
	m.initialized = false
	return portaudio.Terminate()
}

// recordPhrase blocks until one phrase is captured. It waits up to
// opts.Timeout for the energy gate to open (ErrNoSpeech otherwise), then
// records until trailingSilence of quiet or until opts.PhraseLimit forces
// the window closed. Returns 16-bit samples ready for WAV encoding.
func (m *microphone) recordPhrase(opts ListenOptions) ([]int16, error) {
	if !m.initialized {
		return nil, ErrClosed
	}

	buf := make([]float32, frameSize)
	stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, len(buf), buf)
	if err != nil {
		return nil, &BackendError{Op: "open stream", Err: err}
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, &BackendError{Op: "start stream", Err: err}
	}
	defer stream.Stop()

	var (
		out           []int16
		speaking      bool
		silenceFrames int
		waited        time.Duration
		recorded      time.Duration
	)
	silenceLimit := int(trailingSilence / frameDuration)

	for {
		if err := stream.Read(); err != nil {
			return nil, &BackendError{Op: "read stream", Err: err}
		}

		rms := frameRMS(buf)

		if !speaking {
			if rms <= silenceThreshRMS {
				waited += frameDuration
				if waited >= opts.Timeout {
					return nil, ErrNoSpeech
				}
				continue
			}
			speaking = true
		}

		out = appendPCM16(out, buf)
		recorded += frameDuration

		if rms <= silenceThreshRMS {
			silenceFrames++
			if silenceFrames >= silenceLimit {
				break
			}
		} else {
			silenceFrames = 0
		}

		// Phrase cap: close the window even mid-sentence.
		if recorded >= opts.PhraseLimit {
			break
		}
	}

	return out, nil
}

func frameRMS(f []float32) float64 {
	var s float64
	for _, x := range f {
		s += float64(x * x)
	}
	return math.Sqrt(s / float64(len(f)))
}

func appendPCM16(out []int16, frame []float32) []int16 {
	for _, x := range frame {
		if x > 1 {
			x = 1
		} else if x < -1 {
			x = -1
		}
		out = append(out, int16(x*math.MaxInt16))
	}
	return out
}
