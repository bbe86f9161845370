package greenar

// Notes:
// - The embedded inventory is covered in internal/assets; tests here use
//   WithInventory so expectations do not move when assets are added.

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-greenar/internal/assets"
)

func newTestResolver(t *testing.T, opts ...Option) *Resolver {
	t.Helper()

	base := []Option{WithInventory(
		[]string{"bael_tree.glb", "coconut_tree.glb", "neem_tree.glb"},
		[]string{"coconut_tree.jpg", "neem_tree.webp"},
	)}
	r, err := NewResolver(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	return r
}

// ---------------------------------------------------------------------------
// TestResolver_Paths - Public path lookups
// ---------------------------------------------------------------------------

func TestResolver_ModelPath(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)

	tests := []struct {
		name     string
		input    string
		override string
		want     string
	}{
		{"known model", "Coconut Tree", "", "/models/coconut_tree.glb"},
		{"case and whitespace", "  COCONUT   tree ", "", "/models/coconut_tree.glb"},
		{"unknown falls back to first model", "Unknown Shrub", "", "/models/bael_tree.glb"},
		{"override verbatim", "Coconut Tree", "https://cdn.example.com/c.glb", "https://cdn.example.com/c.glb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := r.ModelPath(tt.input, tt.override); got != tt.want {
				t.Errorf("ModelPath(%q, %q) = %q, want %q", tt.input, tt.override, got, tt.want)
			}
		})
	}
}

func TestResolver_IOSModelPath(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)

	tests := []struct {
		name        string
		input       string
		override    string
		iosOverride string
		want        string
	}{
		{"derived from model", "Coconut Tree", "", "", "/models/coconut_tree.usdz"},
		{"derived from fallback", "Unknown Shrub", "", "", "/models/bael_tree.usdz"},
		{"derived from model override", "Coconut Tree", "https://cdn.example.com/c.glb?v=3", "", "https://cdn.example.com/c.usdz?v=3"},
		{"ios override wins", "Coconut Tree", "https://cdn.example.com/c.glb", "https://cdn.example.com/c-ios.usdz", "https://cdn.example.com/c-ios.usdz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := r.IOSModelPath(tt.input, tt.override, tt.iosOverride); got != tt.want {
				t.Errorf("IOSModelPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolver_ImagePath(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)

	tests := []struct {
		name     string
		input    string
		override string
		want     string
	}{
		{"known jpg", "Coconut Tree", "", "/images/coconut_tree.jpg"},
		{"known webp", "Neem Tree", "", "/images/neem_tree.webp"},
		{"unknown synthesizes jpg", "Unknown Shrub", "", "/images/unknown_shrub.jpg"},
		{"empty name uses placeholder", "", "", "/images/placeholder.jpg"},
		{"override verbatim", "Neem Tree", "/uploads/n.png", "/uploads/n.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := r.ImagePath(tt.input, tt.override); got != tt.want {
				t.Errorf("ImagePath(%q, %q) = %q, want %q", tt.input, tt.override, got, tt.want)
			}
		})
	}
}

func TestResolver_Directories(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t,
		WithModelsDir("https://cdn.example.com/models/"),
		WithImagesDir("/static/img"),
	)

	if got, want := r.ModelPath("Neem Tree", ""), "https://cdn.example.com/models/neem_tree.glb"; got != want {
		t.Errorf("ModelPath() = %q, want %q", got, want)
	}
	if got, want := r.ImagePath("Neem Tree", ""), "/static/img/neem_tree.webp"; got != want {
		t.Errorf("ImagePath() = %q, want %q", got, want)
	}
}

func TestResolver_Available(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)

	wantModels := []string{"/models/bael_tree.glb", "/models/coconut_tree.glb", "/models/neem_tree.glb"}
	if diff := cmp.Diff(wantModels, r.AvailableModels()); diff != "" {
		t.Errorf("AvailableModels() mismatch (-want +got):\n%s", diff)
	}
	wantImages := []string{"/images/coconut_tree.jpg", "/images/neem_tree.webp"}
	if diff := cmp.Diff(wantImages, r.AvailableImages()); diff != "" {
		t.Errorf("AvailableImages() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_CompanionPath(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)
	if got, want := r.CompanionPath("/models/teak_tree.glb#top"), "/models/teak_tree.usdz#top"; got != want {
		t.Errorf("CompanionPath() = %q, want %q", got, want)
	}
}

func TestResolver_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := r.ModelPath("Neem Tree", ""); got != "/models/neem_tree.glb" {
					t.Errorf("ModelPath() = %q under concurrency", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// ---------------------------------------------------------------------------
// TestNewResolver - Construction and error mapping
// ---------------------------------------------------------------------------

func TestNewResolver_Default(t *testing.T) {
	t.Parallel()

	r, err := NewResolver()
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if got, want := r.ModelPath("Coconut Tree", ""), "/models/coconut_tree.glb"; got != want {
		t.Errorf("ModelPath() = %q, want %q", got, want)
	}
	if len(r.AvailableModels()) == 0 {
		t.Error("AvailableModels() is empty for embedded inventory")
	}
}

func TestNewResolver_InventoryFile(t *testing.T) {
	t.Parallel()

	t.Run("loads file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "inventory.yaml")
		content := "models:\n  - teak_tree.glb\nimages:\n  - teak_tree.png\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		r, err := NewResolver(WithInventoryFile(path))
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if got, want := r.ImagePath("Teak Tree", ""), "/images/teak_tree.png"; got != want {
			t.Errorf("ImagePath() = %q, want %q", got, want)
		}
	})

	t.Run("missing file returns ErrInventoryNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := NewResolver(WithInventoryFile(filepath.Join(t.TempDir(), "missing.yaml")))
		if !errors.Is(err, ErrInventoryNotFound) {
			t.Errorf("NewResolver() error = %v, want ErrInventoryNotFound", err)
		}
	})

	t.Run("malformed file returns ErrInvalidInventory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "inventory.yaml")
		if err := os.WriteFile(path, []byte("models: [unclosed"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := NewResolver(WithInventoryFile(path))
		if !errors.Is(err, ErrInvalidInventory) {
			t.Errorf("NewResolver() error = %v, want ErrInvalidInventory", err)
		}
	})

	t.Run("last inventory option wins", func(t *testing.T) {
		t.Parallel()
		r, err := NewResolver(
			WithInventoryFile(filepath.Join(t.TempDir(), "missing.yaml")),
			WithInventory([]string{"peach_tree.glb"}, nil),
		)
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if got, want := r.ModelPath("anything", ""), "/models/peach_tree.glb"; got != want {
			t.Errorf("ModelPath() = %q, want %q", got, want)
		}
	})
}

func TestNewResolver_InvalidEntries(t *testing.T) {
	t.Parallel()

	_, err := NewResolver(WithInventory([]string{"../escape.glb"}, nil))
	if !errors.Is(err, ErrInvalidInventory) {
		t.Errorf("NewResolver() error = %v, want ErrInvalidInventory", err)
	}
}

func TestConvertAssetError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  error
		want   error
		passes bool
	}{
		{"not found", assets.ErrInventoryNotFound, ErrInventoryNotFound, false},
		{"parse", assets.ErrInventoryParse, ErrInvalidInventory, false},
		{"invalid name", assets.ErrInvalidAssetName, ErrInvalidInventory, false},
		{"other errors pass through", assets.ErrAssetRead, assets.ErrAssetRead, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := convertAssetError(tt.input)
			if !errors.Is(got, tt.want) {
				t.Errorf("convertAssetError(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if got.Error() != tt.input.Error() {
				t.Errorf("message = %q, want original %q", got.Error(), tt.input.Error())
			}
			if !tt.passes && errors.Is(got, tt.input) {
				t.Errorf("internal sentinel %v leaked through public error", tt.input)
			}
		})
	}

	if convertAssetError(nil) != nil {
		t.Error("convertAssetError(nil) != nil")
	}
}
