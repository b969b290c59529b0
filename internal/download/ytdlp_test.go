package download

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tubegrab/tubegrab/internal/platform"
)

func TestVideoHeight(t *testing.T) {
	tests := []struct {
		quality  string
		expected string
	}{
		{"1080p", "1080"},
		{"720p", "720"},
		{"480p", "480"},
		{"360p", "360"},
		{"240p", "240"},
		{"4320p", "1080"},
		{"", "1080"},
		{"garbage", "1080"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, videoHeight(test.quality), "quality %q", test.quality)
	}
}

func TestAudioBitrate(t *testing.T) {
	tests := []struct {
		quality  string
		expected string
	}{
		{"320kbps", "320"},
		{"256kbps", "256"},
		{"192kbps", "192"},
		{"128kbps", "128"},
		{"64kbps", "64"},
		{"1080p", "192"},
		{"", "192"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, audioBitrate(test.quality), "quality %q", test.quality)
	}
}

func TestVideoFormatSelector(t *testing.T) {
	selector := videoFormatSelector("720p")
	assert.Equal(t, "best[height<=720]/bestvideo[height<=720]+bestaudio/best", selector)

	// Unknown qualities fall back rather than producing a broken selector.
	selector = videoFormatSelector("hd")
	assert.Equal(t, "best[height<=1080]/bestvideo[height<=1080]+bestaudio/best", selector)
}

func TestOutputTemplate(t *testing.T) {
	dest := filepath.Join("home", "downloads")

	tests := []struct {
		name        string
		contentType platform.ContentType
		expected    string
	}{
		{"video", platform.ContentTypeVideo, filepath.Join(dest, "%(title)s.%(ext)s")},
		{"playlist", platform.ContentTypePlaylist, filepath.Join(dest, "%(playlist_title)s/%(playlist_index)s-%(title)s.%(ext)s")},
		{"channel", platform.ContentTypeChannel, filepath.Join(dest, "%(uploader)s/%(upload_date)s-%(title)s.%(ext)s")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, outputTemplate(dest, test.contentType))
		})
	}
}
