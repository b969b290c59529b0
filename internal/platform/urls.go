package platform

import (
	"regexp"
	"strings"
)

// ContentType classifies what a URL points at, which decides the output
// template the engine uses.
type ContentType string

const (
	ContentTypeVideo    ContentType = "video"
	ContentTypePlaylist ContentType = "playlist"
	ContentTypeChannel  ContentType = "channel"
)

// URL shape markers
const (
	PlaylistQueryParam = "list="
)

var (
	urlSeparators = regexp.MustCompile(`[,\s]+`)

	channelPathMarkers = []string{"/@", "/channel/", "/c/", "/user/"}

	supportedPathMarkers = []string{
		"/watch?", "/playlist?", "/@", "/channel/", "/c/", "/user/", "youtu.be/",
	}
)

// SplitURLList splits raw form input into individual URL candidates. The
// input may mix commas, spaces, tabs, and newlines as separators.
func SplitURLList(input string) []string {
	parts := urlSeparators.Split(strings.TrimSpace(input), -1)

	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			urls = append(urls, p)
		}
	}
	return urls
}

// IsSupportedURL reports whether the URL looks like a YouTube video,
// playlist, or channel URL.
func IsSupportedURL(url string) bool {
	if !strings.Contains(url, "youtube.com") && !strings.Contains(url, "youtu.be") {
		return false
	}
	for _, marker := range supportedPathMarkers {
		if strings.Contains(url, marker) {
			return true
		}
	}
	return false
}

// FilterSupportedURLs returns the supported subset of candidates and how many
// entries were skipped.
func FilterSupportedURLs(candidates []string) (valid []string, skipped int) {
	for _, url := range candidates {
		if IsSupportedURL(url) {
			valid = append(valid, url)
		} else {
			skipped++
		}
	}
	return valid, skipped
}

// DetectContentType classifies a URL by its shape. Channel path markers win
// over a playlist query parameter: channel pages carry list= parameters too.
func DetectContentType(url string) ContentType {
	for _, marker := range channelPathMarkers {
		if strings.Contains(url, marker) {
			return ContentTypeChannel
		}
	}
	if strings.Contains(url, PlaylistQueryParam) {
		return ContentTypePlaylist
	}
	return ContentTypeVideo
}
