package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "plants.csv")
	if err := os.WriteFile(file, []byte("Name\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if !FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
	if FileExists(dir) {
		t.Errorf("FileExists(dir) = true, want false")
	}
	if FileExists(filepath.Join(dir, "missing.csv")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"greenar":           false,
		"my-config":         false,
		"./greenar.yaml":    true,
		"../shared/g.yaml":  true,
		"/etc/greenar.yaml": true,
		`C:\greenar.yaml`:   true,
	}
	for input, want := range tests {
		if got := IsFilePath(input); got != want {
			t.Errorf("IsFilePath(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"http://192.168.43.72:3000": true,
		"https://cdn.example.com":   true,
		"ftp://example.com":         false,
		"/models":                   false,
		"":                          false,
	}
	for input, want := range tests {
		if got := IsURL(input); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestIsPublicPath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"/models":                  true,
		"https://cdn.example.com/": true,
		"models":                   false,
		"":                         false,
	}
	for input, want := range tests {
		if got := IsPublicPath(input); got != want {
			t.Errorf("IsPublicPath(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestJoinURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, p, want string
	}{
		{"http://192.168.43.72:3000", "/models/neem_tree.glb", "http://192.168.43.72:3000/models/neem_tree.glb"},
		{"http://host/", "/models/a.glb", "http://host/models/a.glb"},
		{"http://host", "models/a.glb", "http://host/models/a.glb"},
		{"", "/models/a.glb", "/models/a.glb"},
		{"http://host", "https://cdn.example.com/a.glb", "https://cdn.example.com/a.glb"},
	}
	for _, tt := range tests {
		if got := JoinURL(tt.base, tt.p); got != tt.want {
			t.Errorf("JoinURL(%q, %q) = %q, want %q", tt.base, tt.p, got, tt.want)
		}
	}
}
