package download

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"github.com/tubegrab/tubegrab/internal/model"
	"github.com/tubegrab/tubegrab/internal/platform"
)

// Engine invocation constants
const (
	ProgressInterval = 500 * time.Millisecond
	EngineRetries    = "3"
)

// Output templates by content type. Playlists and channels get their own
// subdirectory under the destination, single videos land flat.
const (
	videoOutputTemplate    = "%(title)s.%(ext)s"
	playlistOutputTemplate = "%(playlist_title)s/%(playlist_index)s-%(title)s.%(ext)s"
	channelOutputTemplate  = "%(uploader)s/%(upload_date)s-%(title)s.%(ext)s"
)

// Quality fallbacks when the stored preference is stale or unknown.
const (
	fallbackVideoHeight  = "1080"
	fallbackAudioBitrate = "192"
)

var videoHeights = map[string]string{
	"1080p": "1080",
	"720p":  "720",
	"480p":  "480",
	"360p":  "360",
	"240p":  "240",
}

var audioBitrates = map[string]string{
	"320kbps": "320",
	"256kbps": "256",
	"192kbps": "192",
	"128kbps": "128",
	"64kbps":  "64",
}

// YTDLPEngine drives yt-dlp through the go-ytdlp binding. The media
// processor (ffmpeg) is invoked by yt-dlp itself for audio extraction and
// container merging; this code never runs it directly.
type YTDLPEngine struct {
	log zerolog.Logger
}

// NewYTDLPEngine creates the production engine.
func NewYTDLPEngine(log zerolog.Logger) *YTDLPEngine {
	return &YTDLPEngine{log: log}
}

// Install downloads the yt-dlp binary if it is not already available. Best
// effort: a download can still succeed against a system-installed binary.
func Install(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("install yt-dlp: %w", err)
	}
	return nil
}

// Fetch downloads one URL synchronously, sampling progress every
// ProgressInterval.
func (e *YTDLPEngine) Fetch(ctx context.Context, req model.DownloadRequest, onProgress func(Progress)) (string, error) {
	dl := e.buildCommand(req)

	dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
		if onProgress != nil {
			onProgress(toProgress(update))
		}
	})

	e.log.Debug().Str("url", req.URL).Str("format", req.Format.String()).Msg("invoking engine")

	result, err := dl.Run(ctx, req.URL)
	if err != nil {
		return "", fmt.Errorf("yt-dlp: %w", err)
	}

	return extractOutputPath(result), nil
}

// buildCommand maps a request onto yt-dlp flags.
func (e *YTDLPEngine) buildCommand(req model.DownloadRequest) *ytdlp.Command {
	dl := ytdlp.New().
		ForceOverwrites().
		RestrictFilenames().
		Retries(EngineRetries).
		FragmentRetries(EngineRetries).
		Output(outputTemplate(req.Destination, platform.DetectContentType(req.URL)))

	if req.Format == model.FormatAudio {
		return dl.
			Format("bestaudio/best").
			ExtractAudio().
			AudioFormat("mp3").
			AudioQuality(audioBitrate(req.Quality))
	}

	return dl.
		Format(videoFormatSelector(req.Quality)).
		MergeOutputFormat("mp4")
}

// videoFormatSelector prefers a single stream that already includes audio at
// the capped height and falls back to merging separate streams.
func videoFormatSelector(quality string) string {
	height := videoHeight(quality)
	return fmt.Sprintf("best[height<=%s]/bestvideo[height<=%s]+bestaudio/best", height, height)
}

// videoHeight maps a quality label to a pixel height cap.
func videoHeight(quality string) string {
	if height, ok := videoHeights[quality]; ok {
		return height
	}
	return fallbackVideoHeight
}

// audioBitrate maps a quality label to an MP3 bitrate.
func audioBitrate(quality string) string {
	if bitrate, ok := audioBitrates[quality]; ok {
		return bitrate
	}
	return fallbackAudioBitrate
}

// outputTemplate builds the yt-dlp output template for a destination and
// content type.
func outputTemplate(destination string, contentType platform.ContentType) string {
	switch contentType {
	case platform.ContentTypePlaylist:
		return filepath.Join(destination, playlistOutputTemplate)
	case platform.ContentTypeChannel:
		return filepath.Join(destination, channelOutputTemplate)
	default:
		return filepath.Join(destination, videoOutputTemplate)
	}
}

// toProgress converts a yt-dlp progress sample into the engine-neutral form.
func toProgress(update ytdlp.ProgressUpdate) Progress {
	p := Progress{ETASec: -1}

	if update.TotalBytes > 0 {
		p.Percent = int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			p.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	if eta := update.ETA(); eta > 0 {
		p.ETASec = int(eta.Seconds())
	}

	if update.Info != nil && update.Info.Title != nil {
		p.Title = *update.Info.Title
	}

	return p
}

// extractOutputPath pulls the downloaded file path out of the run result.
func extractOutputPath(result *ytdlp.Result) string {
	if result == nil {
		return ""
	}
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return ""
	}
	if info[0].Filename != nil {
		return *info[0].Filename
	}
	return ""
}
