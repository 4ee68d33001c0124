package splitentity

type TrackDescriptor struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Size     int    `json:"size"`
	Duration int    `json:"duration"`
}

type Tracks map[string]TrackDescriptor

type OriginalFile struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

type SplitResult struct {
	Success        bool         `json:"success"`
	Tracks         Tracks       `json:"tracks"`
	Original       OriginalFile `json:"original"`
	ProcessingTime float64      `json:"processing_time"`
	DemoMode       bool         `json:"demo_mode"`
	Message        string       `json:"message"`
}
