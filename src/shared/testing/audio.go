package testing

import (
	"encoding/base64"
	"github.com/veedubyou/stem-split-demo/src/shared/values/demo"
)

const OneMB = demo.BytesPerMB

// MakeAudio doesn't need to be real audio, nothing ever listens to it
func MakeAudio(size int) []byte {
	audio := make([]byte, size)
	for i := range audio {
		audio[i] = byte(i % 251)
	}

	return audio
}

func EncodeAudio(audio []byte) string {
	return base64.StdEncoding.EncodeToString(audio)
}

func MakeEncodedAudio(size int) string {
	return EncodeAudio(MakeAudio(size))
}

func UploadPayload(audio string, filename string, instruments []string) map[string]any {
	payload := map[string]any{}
	if audio != "" {
		payload["audio"] = audio
	}

	if filename != "" {
		payload["filename"] = filename
	}

	if instruments != nil {
		payload["instruments"] = instruments
	}

	return payload
}
