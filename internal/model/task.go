package model

import (
	"fmt"
	"strings"
	"time"
)

// DownloadTask tracks one request through the worker pool.
type DownloadTask struct {
	ID         string
	Request    DownloadRequest
	Status     TaskStatus
	Percent    int    // 0 to 100
	Speed      string // human readable speed (e.g., "1.2MB/s")
	ETASec     int    // ETA in seconds, -1 if unknown
	LastError  string // last error message if any
	OutputPath string // path to downloaded file
	Title      string // video title once the engine reports it
	StartedAt  time.Time
	FinishedAt time.Time
}

// ETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (dt *DownloadTask) ETAString() string {
	if dt.ETASec <= 0 {
		return "—"
	}

	hours := dt.ETASec / 3600
	minutes := (dt.ETASec % 3600) / 60
	seconds := dt.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// DisplayTitle returns title, filename, or URL in order of preference
func (dt *DownloadTask) DisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if dt.OutputPath != "" {
		parts := strings.FieldsFunc(dt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return dt.Request.URL
}
