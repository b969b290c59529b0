package download

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/tubegrab/tubegrab/internal/model"
)

// MockEngine is an in-memory Engine for tests: no network, no binaries. It
// records every fetched URL and tracks the highest concurrency it observed.
type MockEngine struct {
	// Delay is how long each Fetch blocks, simulating a download.
	Delay time.Duration

	// FailFor maps URLs to the error their Fetch should return.
	FailFor map[string]error

	// OnFetch, when set, is called at the start of every Fetch.
	OnFetch func(req model.DownloadRequest)

	mu          sync.Mutex
	calls       []string
	inFlight    int
	maxInFlight int
}

// Fetch records the call, optionally reports fake progress, and returns a
// fake output path or the configured error.
func (m *MockEngine) Fetch(ctx context.Context, req model.DownloadRequest, onProgress func(Progress)) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req.URL)
	m.inFlight++
	if m.inFlight > m.maxInFlight {
		m.maxInFlight = m.inFlight
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	if m.OnFetch != nil {
		m.OnFetch(req)
	}

	if onProgress != nil {
		onProgress(Progress{Percent: 50, Speed: "1.0MB/s", ETASec: 5, Title: "Mock Video"})
	}

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err, ok := m.FailFor[req.URL]; ok {
		return "", err
	}

	if onProgress != nil {
		onProgress(Progress{Percent: 100})
	}

	return filepath.Join(req.Destination, "mock-video.mp4"), nil
}

// Calls returns the URLs fetched so far.
func (m *MockEngine) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MaxConcurrent returns the highest number of simultaneous Fetch calls seen.
func (m *MockEngine) MaxConcurrent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxInFlight
}
