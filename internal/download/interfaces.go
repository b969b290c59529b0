package download

import (
	"context"

	"github.com/tubegrab/tubegrab/internal/model"
)

// Progress is a sampled snapshot of one running download.
type Progress struct {
	Percent int
	Speed   string
	ETASec  int
	Title   string
}

// Engine abstracts the external download engine. Fetch blocks for the
// duration of one URL's download and calls onProgress from its own goroutine.
type Engine interface {
	Fetch(ctx context.Context, req model.DownloadRequest, onProgress func(Progress)) (outputPath string, err error)
}

// Dispatcher is the download service surface the UI depends on.
type Dispatcher interface {
	Start(ctx context.Context, requests []model.DownloadRequest) error
	Events() <-chan Event
	Running() bool
	WorkerCount(urls int) int
	SetMaxWorkers(max int)
}
