package platform

import (
	"reflect"
	"testing"
)

func TestSplitURLList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single url",
			input:    "https://youtube.com/watch?v=abc",
			expected: []string{"https://youtube.com/watch?v=abc"},
		},
		{
			name:     "comma separated",
			input:    "https://youtu.be/a,https://youtu.be/b",
			expected: []string{"https://youtu.be/a", "https://youtu.be/b"},
		},
		{
			name:     "mixed separators",
			input:    "https://youtu.be/a, https://youtu.be/b https://youtu.be/c\nhttps://youtu.be/d",
			expected: []string{"https://youtu.be/a", "https://youtu.be/b", "https://youtu.be/c", "https://youtu.be/d"},
		},
		{
			name:     "tabs and repeated commas",
			input:    "https://youtu.be/a,,\thttps://youtu.be/b",
			expected: []string{"https://youtu.be/a", "https://youtu.be/b"},
		},
		{
			name:     "empty input",
			input:    "   \n\t ",
			expected: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := SplitURLList(test.input)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("SplitURLList(%q) = %v, expected %v", test.input, result, test.expected)
			}
		})
	}
}

func TestIsSupportedURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://www.youtube.com/watch?v=abc123", true},
		{"https://youtube.com/playlist?list=PLxyz", true},
		{"https://youtu.be/abc123", true},
		{"https://www.youtube.com/@somechannel", true},
		{"https://www.youtube.com/channel/UCxyz", true},
		{"https://www.youtube.com/c/somechannel", true},
		{"https://www.youtube.com/user/someuser", true},
		{"https://vimeo.com/12345", false},
		{"https://youtube.com/", false},
		{"not a url", false},
	}

	for _, test := range tests {
		result := IsSupportedURL(test.url)
		if result != test.expected {
			t.Errorf("IsSupportedURL(%q) = %v, expected %v", test.url, result, test.expected)
		}
	}
}

func TestFilterSupportedURLs(t *testing.T) {
	candidates := []string{
		"https://youtube.com/watch?v=a",
		"https://example.com/video",
		"https://youtu.be/b",
		"garbage",
	}

	valid, skipped := FilterSupportedURLs(candidates)

	if len(valid) != 2 {
		t.Errorf("expected 2 valid URLs, got %d", len(valid))
	}
	if skipped != 2 {
		t.Errorf("expected 2 skipped entries, got %d", skipped)
	}
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		url      string
		expected ContentType
	}{
		{"https://www.youtube.com/watch?v=abc", ContentTypeVideo},
		{"https://youtu.be/abc", ContentTypeVideo},
		{"https://www.youtube.com/watch?v=abc&list=PLxyz", ContentTypePlaylist},
		{"https://www.youtube.com/playlist?list=PLxyz", ContentTypePlaylist},
		{"https://www.youtube.com/@somechannel", ContentTypeChannel},
		{"https://www.youtube.com/channel/UCxyz", ContentTypeChannel},
		{"https://www.youtube.com/c/somechannel/videos?list=PLxyz", ContentTypeChannel},
		{"https://www.youtube.com/user/someuser", ContentTypeChannel},
	}

	for _, test := range tests {
		result := DetectContentType(test.url)
		if result != test.expected {
			t.Errorf("DetectContentType(%q) = %s, expected %s", test.url, result, test.expected)
		}
	}
}
