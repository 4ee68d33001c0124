package splitentity

import (
	"encoding/base64"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/errors/mark"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/jsonlib"
	"github.com/veedubyou/stem-split-demo/src/shared/values/demo"
	"strings"
)

var (
	MalformedJSONMark  = errors.New("upload body is not a well formed json object")
	MalformedAudioMark = errors.New("audio is not valid base64")
)

type UploadRequest struct {
	Audio       string
	Filename    string
	Instruments []string
}

func (u UploadRequest) HasAudio() bool {
	return u.Audio != ""
}

const (
	audioKey       = "audio"
	filenameKey    = "filename"
	instrumentsKey = "instruments"
)

// a missing or null field means "use the default", keys are case sensitive
func ParseUploadRequest(body []byte) (UploadRequest, error) {
	object, err := jsonlib.UnmarshalObject[jsonlib.Object](body)
	if err != nil {
		return UploadRequest{}, mark.Wrap(err, MalformedJSONMark, "Failed to parse upload body")
	}

	audio, err := jsonlib.Field[string](object, audioKey)
	if err != nil {
		return UploadRequest{}, mark.Wrap(err, MalformedJSONMark, "Failed to read audio from upload body")
	}

	filename, err := jsonlib.Field[string](object, filenameKey)
	if err != nil {
		return UploadRequest{}, mark.Wrap(err, MalformedJSONMark, "Failed to read filename from upload body")
	}

	instruments, err := jsonlib.Field[[]string](object, instrumentsKey)
	if err != nil {
		return UploadRequest{}, mark.Wrap(err, MalformedJSONMark, "Failed to read instruments from upload body")
	}

	upload := UploadRequest{
		Audio:       "",
		Filename:    demo.DefaultFilename,
		Instruments: demo.DefaultInstruments(),
	}

	if audio != nil {
		upload.Audio = *audio
	}

	if filename != nil {
		upload.Filename = *filename
	}

	if instruments != nil {
		upload.Instruments = *instruments
	}

	return upload, nil
}

type DecodedAudio struct {
	Data []byte
}

// MinDecodedSize is the fewest bytes the encoded audio could decode to,
// without decoding it. The decoder skips line breaks and padding trims up to two bytes
func MinDecodedSize(encoded string) int {
	encodedLen := len(encoded) - strings.Count(encoded, "\n") - strings.Count(encoded, "\r")
	minSize := base64.StdEncoding.DecodedLen(encodedLen) - 2
	if minSize < 0 {
		return 0
	}

	return minSize
}

func DecodeAudio(encoded string) (DecodedAudio, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return DecodedAudio{}, mark.Wrap(err, MalformedAudioMark, "Failed to decode base64 audio")
	}

	return DecodedAudio{Data: data}, nil
}

func (d DecodedAudio) Size() int {
	return len(d.Data)
}

func (d DecodedAudio) SizeMB() float64 {
	return float64(d.Size()) / demo.BytesPerMB
}
