package spliterrors

import (
	"github.com/veedubyou/stem-split-demo/src/shared/errors/api"
)

const (
	BadUploadDataCode    = api.ErrorCode("bad_upload_data")
	NoAudioDataCode      = api.ErrorCode("no_audio_data")
	BadAudioEncodingCode = api.ErrorCode("bad_audio_encoding")
	FileTooLargeCode     = api.ErrorCode("file_too_large")
	RequestIDMissingCode = api.ErrorCode("request_id_missing")
)
