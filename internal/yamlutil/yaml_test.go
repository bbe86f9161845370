package yamlutil_test

// Notes:
// - Marshal error branch: yaml.Marshal only fails on channels and funcs,
//   which no caller passes.
// - TestInputSizeLimit mutates MaxInputSize and therefore does not run in
//   parallel.

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-greenar/internal/yamlutil"
)

type inventoryDoc struct {
	Models []string `yaml:"models"`
	Images []string `yaml:"images"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		want    *inventoryDoc
		wantErr error
	}{
		{
			name: "models and images",
			data: []byte("models:\n  - neem_tree.glb\nimages:\n  - neem_tree.jpg\n"),
			dest: &inventoryDoc{},
			want: &inventoryDoc{Models: []string{"neem_tree.glb"}, Images: []string{"neem_tree.jpg"}},
		},
		{
			name: "unknown key ignored",
			data: []byte("models: [teak_tree.glb]\nextra: true\n"),
			dest: &inventoryDoc{},
			want: &inventoryDoc{Models: []string{"teak_tree.glb"}},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &inventoryDoc{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &inventoryDoc{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("models: []"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, tt.dest); diff != "" {
				t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Unknown keys are rejected
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known keys decode", func(t *testing.T) {
		t.Parallel()

		var doc inventoryDoc
		if err := yamlutil.UnmarshalStrict([]byte("models: [bael_tree.glb]"), &doc); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if diff := cmp.Diff([]string{"bael_tree.glb"}, doc.Models); diff != "" {
			t.Errorf("Models mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown key fails", func(t *testing.T) {
		t.Parallel()

		var doc inventoryDoc
		err := yamlutil.UnmarshalStrict([]byte("model: [bael_tree.glb]"), &doc)
		if err == nil {
			t.Fatal("UnmarshalStrict() expected error for unknown key")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error %q should carry the yamlutil prefix", err)
		}
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		t.Parallel()

		var doc inventoryDoc
		if err := yamlutil.UnmarshalStrict([]byte("models: [unterminated"), &doc); err == nil {
			t.Fatal("UnmarshalStrict() expected error for malformed input")
		}
	})
}

// ---------------------------------------------------------------------------
// TestMarshal - Output is readable and decodes back
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	in := inventoryDoc{Models: []string{"neem_tree.glb", "teak_tree.glb"}}
	out, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), "  - neem_tree.glb") {
		t.Errorf("Marshal() output should indent sequences, got:\n%s", out)
	}

	var back inventoryDoc
	if err := yamlutil.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal(Marshal()) error = %v", err)
	}
	if diff := cmp.Diff(in.Models, back.Models); diff != "" {
		t.Errorf("models changed after re-decoding (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - MaxInputSize is enforced before decoding
// ---------------------------------------------------------------------------

func TestInputSizeLimit(t *testing.T) {
	original := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = original })
	yamlutil.MaxInputSize = 32

	big := []byte("models: [" + strings.Repeat("a", 64) + ".glb]")
	var doc inventoryDoc
	if err := yamlutil.Unmarshal(big, &doc); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
	if err := yamlutil.UnmarshalStrict(big, &doc); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("UnmarshalStrict() error = %v, want ErrInputTooLarge", err)
	}

	small := []byte("models: [a.glb]")
	if err := yamlutil.Unmarshal(small, &doc); err != nil {
		t.Errorf("Unmarshal() under the limit error = %v", err)
	}
}
