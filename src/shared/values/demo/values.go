package demo

// Output
const (
	OutputBaseURL = "https://demo.stemsplit.com/output"
	StemExtension = "wav"
)

// Upload
const (
	DefaultFilename = "track.mp3"
	MaxFileSizeMB   = 100
	BytesPerMB      = 1024 * 1024
	MaxFileSize     = MaxFileSizeMB * BytesPerMB
)

// the separation isn't real, so neither are these
const (
	PlaceholderDurationSeconds = 204
	ProcessingTimeSeconds      = 2.5
	Disclaimer                 = "Демо-версия: реальное разделение требует установки Spleeter/Demucs модели"
)

func DefaultInstruments() []string {
	return []string{"vocals", "drums", "bass", "other"}
}

// Server
const (
	DefaultPort = ":5000"
)
