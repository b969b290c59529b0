// Package download implements the batch download pipeline built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp). It runs each URL of a batch on
// a bounded pool of workers and relays progress to the UI through a single
// event channel, so workers never touch widget state directly.
package download
