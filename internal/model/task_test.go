package model

import "testing"

func TestDownloadTask_ETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		task := &DownloadTask{ETASec: test.etaSec}
		result := task.ETAString()
		if result != test.expected {
			t.Errorf("ETAString() with ETASec=%d = %s, expected %s", test.etaSec, result, test.expected)
		}
	}
}

func TestDownloadTask_DisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		output   string
		url      string
		expected string
	}{
		{"Video Title", "", "https://youtube.com/watch?v=123", "Video Title"},
		{"", "", "https://youtube.com/watch?v=123", "https://youtube.com/watch?v=123"},
		{"", "/downloads/Some Song.mp3", "https://youtube.com/watch?v=456", "Some Song"},
		{"https://youtube.com/watch?v=789", "", "https://youtube.com/watch?v=789", "https://youtube.com/watch?v=789"},
	}

	for _, test := range tests {
		task := &DownloadTask{
			Title:      test.title,
			OutputPath: test.output,
			Request:    DownloadRequest{URL: test.url},
		}
		result := task.DisplayTitle()
		if result != test.expected {
			t.Errorf("DisplayTitle() with title=%q output=%q url=%q = %q, expected %q",
				test.title, test.output, test.url, result, test.expected)
		}
	}
}

func TestDownloadRequest_Validate(t *testing.T) {
	valid := DownloadRequest{
		URL:         "https://youtube.com/watch?v=test",
		Format:      FormatVideo,
		Quality:     "1080p",
		Destination: "/tmp/downloads",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid request, got error: %v", err)
	}

	noURL := valid
	noURL.URL = ""
	if err := noURL.Validate(); err == nil {
		t.Error("expected error for empty URL")
	}

	noDest := valid
	noDest.Destination = ""
	if err := noDest.Validate(); err == nil {
		t.Error("expected error for empty destination")
	}

	badFormat := valid
	badFormat.Format = Format("flac")
	if err := badFormat.Validate(); err == nil {
		t.Error("expected error for unknown format")
	}

	noQuality := valid
	noQuality.Quality = ""
	if err := noQuality.Validate(); err == nil {
		t.Error("expected error for empty quality")
	}
}

func TestBatchSummary_FailedResults(t *testing.T) {
	summary := &BatchSummary{
		Total:     3,
		Succeeded: 2,
		Failed:    1,
		Results: []DownloadResult{
			{URL: "https://youtu.be/a", Success: true},
			{URL: "https://youtu.be/b", Success: false, Message: "network error"},
			{URL: "https://youtu.be/c", Success: true},
		},
	}

	failed := summary.FailedResults()
	if len(failed) != 1 {
		t.Fatalf("expected 1 failed result, got %d", len(failed))
	}
	if failed[0].URL != "https://youtu.be/b" {
		t.Errorf("expected failed URL 'https://youtu.be/b', got %q", failed[0].URL)
	}
}
