package stt

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// encodeWAV renders captured samples as a 16-bit mono WAV payload for the
// recognition upload. The encoder needs a seekable writer to patch the RIFF
// header, so it goes through a temp file.
func encodeWAV(samples []int16) ([]byte, error) {
	f, err := os.CreateTemp("", "nova-capture-*.wav")
	if err != nil {
		return nil, &BackendError{Op: "create temp wav", Err: err}
	}
	name := f.Name()
	defer os.Remove(name)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	if err := enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}); err != nil {
		f.Close()
		return nil, &BackendError{Op: "encode wav", Err: err}
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return nil, &BackendError{Op: "finalize wav", Err: err}
	}
	if err := f.Close(); err != nil {
		return nil, &BackendError{Op: "close temp wav", Err: err}
	}

	payload, err := os.ReadFile(name)
	if err != nil {
		return nil, &BackendError{Op: "read temp wav", Err: err}
	}
	return payload, nil
}
