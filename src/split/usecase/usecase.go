package splitusecase

import (
	"context"
	"fmt"
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/markers"
	"github.com/veedubyou/stem-split-demo/src/shared/errors/api"
	"github.com/veedubyou/stem-split-demo/src/shared/lib/storagepath"
	"github.com/veedubyou/stem-split-demo/src/shared/values/demo"
	"github.com/veedubyou/stem-split-demo/src/split/entity"
	"github.com/veedubyou/stem-split-demo/src/split/errors"
	"net/url"
)

type Config struct {
	OutputBaseURL  string
	MaxFileSize    int
	TrackDuration  int
	ProcessingTime float64
	Message        string
}

func DefaultConfig() Config {
	return Config{
		OutputBaseURL:  demo.OutputBaseURL,
		MaxFileSize:    demo.MaxFileSize,
		TrackDuration:  demo.PlaceholderDurationSeconds,
		ProcessingTime: demo.ProcessingTimeSeconds,
		Message:        demo.Disclaimer,
	}
}

type Usecase struct {
	config        Config
	pathGenerator storagepath.Generator
}

func NewUsecase(config Config) (Usecase, error) {
	baseURL, err := url.Parse(config.OutputBaseURL)
	if err != nil {
		return Usecase{}, errors.Wrap(err, "Output base URL can't be parsed")
	}

	if !baseURL.IsAbs() || baseURL.Host == "" {
		return Usecase{}, errors.Newf("Output base URL %q is not an absolute URL", config.OutputBaseURL)
	}

	if config.MaxFileSize <= 0 {
		return Usecase{}, errors.Newf("Max file size must be positive, got %d", config.MaxFileSize)
	}

	return Usecase{
		config:        config,
		pathGenerator: storagepath.NewGenerator(config.OutputBaseURL),
	}, nil
}

func (u Usecase) Split(ctx context.Context, requestID string, upload splitentity.UploadRequest) (splitentity.SplitResult, *api.Error) {
	if !upload.HasAudio() {
		err := errors.New("Upload has no audio field")
		return splitentity.SplitResult{}, api.CommitError(err,
			spliterrors.NoAudioDataCode,
			"No audio data provided")
	}

	if requestID == "" {
		err := errors.New("No request ID to build the output URLs with")
		return splitentity.SplitResult{}, api.CommitError(err,
			spliterrors.RequestIDMissingCode,
			"The request could not be identified")
	}

	// the bound never overestimates, the decoded size is checked again below
	if minSize := splitentity.MinDecodedSize(upload.Audio); minSize > u.config.MaxFileSize {
		err := errors.Newf("Encoded audio decodes to at least %d bytes, limit is %d", minSize, u.config.MaxFileSize)
		return splitentity.SplitResult{}, u.fileTooLarge(err)
	}

	audio, err := splitentity.DecodeAudio(upload.Audio)
	if err != nil {
		err = errors.Wrap(err, "Failed to decode audio from upload")
		switch {
		case markers.Is(err, splitentity.MalformedAudioMark):
			return splitentity.SplitResult{}, api.CommitError(err,
				spliterrors.BadAudioEncodingCode,
				"Invalid audio encoding")
		default:
			return splitentity.SplitResult{}, api.CommitError(err,
				api.DefaultErrorCode,
				"Failed to read the audio data")
		}
	}

	if audio.Size() > u.config.MaxFileSize {
		err := errors.Newf("Decoded audio is %d bytes, limit is %d", audio.Size(), u.config.MaxFileSize)
		return splitentity.SplitResult{}, u.fileTooLarge(err)
	}

	// decoding is the only slow part, no point fabricating for a caller that left
	if ctx.Err() != nil {
		err := errors.Wrap(ctx.Err(), "Context cancelled before the tracks could be fabricated")
		return splitentity.SplitResult{}, api.CommitError(err,
			api.DefaultErrorCode,
			"The request was cancelled")
	}

	log.WithFields(log.Fields{
		"request_id":       requestID,
		"filename":         upload.Filename,
		"instrument_count": len(upload.Instruments),
		"size_bytes":       audio.Size(),
		"size_mb":          audio.SizeMB(),
	}).Info("Fabricating demo split result")

	return splitentity.SplitResult{
		Success: true,
		Tracks:  u.fabricateTracks(requestID, upload.Instruments, audio.Size()),
		Original: splitentity.OriginalFile{
			Filename: upload.Filename,
			Size:     audio.Size(),
		},
		ProcessingTime: u.config.ProcessingTime,
		DemoMode:       true,
		Message:        u.config.Message,
	}, nil
}

func (u Usecase) fileTooLarge(err error) *api.Error {
	return api.CommitError(err,
		spliterrors.FileTooLargeCode,
		fmt.Sprintf("File too large. Maximum size is %dMB", u.config.MaxFileSize/demo.BytesPerMB))
}

// every stem claims an even share of the original, truncated
func (u Usecase) fabricateTracks(requestID string, instruments []string, originalSize int) splitentity.Tracks {
	tracks := splitentity.Tracks{}
	if len(instruments) == 0 {
		return tracks
	}

	stemSize := originalSize / len(instruments)

	for _, instrument := range instruments {
		stemFilename := fmt.Sprintf("%s.%s", instrument, demo.StemExtension)
		tracks[instrument] = splitentity.TrackDescriptor{
			Name:     stemFilename,
			URL:      u.pathGenerator.GeneratePath(requestID, stemFilename),
			Size:     stemSize,
			Duration: u.config.TrackDuration,
		}
	}

	return tracks
}
