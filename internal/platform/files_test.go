package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCreateDirectoryIfNotExists_Nested(t *testing.T) {
	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "a", "b", "c")

	if err := CreateDirectoryIfNotExists(nested); err != nil {
		t.Fatalf("Failed to create nested directories: %v", err)
	}

	info, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("Nested directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Expected a directory at %s", nested)
	}
}

func TestDefaultDownloadsDir(t *testing.T) {
	downloadsDir, err := DefaultDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	if filepath.Base(downloadsDir) != DownloadsSubdir {
		t.Errorf("Expected directory to end with %q, got: %s", DownloadsSubdir, downloadsDir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home directory: %v", err)
	}
	if !strings.HasPrefix(downloadsDir, home) {
		t.Errorf("Expected directory under home %s, got: %s", home, downloadsDir)
	}
}

func TestOpenDirectory_NonExistent(t *testing.T) {
	tempDir := t.TempDir()
	missing := filepath.Join(tempDir, "missing")

	err := OpenDirectory(missing)
	if err == nil {
		t.Fatal("Expected error for non-existent directory, got nil")
	}

	if !strings.Contains(err.Error(), "directory does not exist") {
		t.Errorf("Error message should mention the missing directory, got: %v", err)
	}
}
