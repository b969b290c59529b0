package model

import "fmt"

// DownloadRequest carries everything a worker needs to fetch one URL. It is
// built from the form when the user presses Start and never mutated after the
// download begins.
type DownloadRequest struct {
	URL         string
	Format      Format
	Quality     string
	Destination string
}

// Validate checks the request for fields that would make the engine fail
// immediately.
func (r DownloadRequest) Validate() error {
	if r.URL == "" {
		return fmt.Errorf("request has no URL")
	}
	if r.Destination == "" {
		return fmt.Errorf("request has no destination directory")
	}
	if r.Format != FormatVideo && r.Format != FormatAudio {
		return fmt.Errorf("unknown format: %q", r.Format)
	}
	if r.Quality == "" {
		return fmt.Errorf("request has no quality")
	}
	return nil
}

// DownloadResult is what a worker reports back for one URL. It is consumed by
// the progress relay and the batch summary; nothing persists it.
type DownloadResult struct {
	URL     string
	Success bool
	Message string
}

// BatchSummary aggregates the results of one Start press.
type BatchSummary struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []DownloadResult
}

// FailedResults returns the failed subset for the summary block in the log.
func (b *BatchSummary) FailedResults() []DownloadResult {
	var failed []DownloadResult
	for _, r := range b.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}
