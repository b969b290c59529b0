package model

import "strings"

// Format selects what the engine should produce for a request.
type Format string

const (
	// FormatVideo downloads video merged into an MP4 container.
	FormatVideo Format = "video"

	// FormatAudio extracts audio only and converts it to MP3.
	FormatAudio Format = "audio"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// ParseFormat maps user-facing format names onto a Format. Unknown values
// fall back to video, matching the form's default selection.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatAudio)) {
		return FormatAudio
	}
	return FormatVideo
}
