package folders

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud-gallery/internal/pathing"
	"cloud-gallery/internal/store"
)

func TestCreate(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	marker, err := Create(context.Background(), mem, "u1", "Trip Photos")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !strings.HasPrefix(marker.Path, "uploads/users/u1/previews/") {
		t.Errorf("Marker path %q not in the root preview scope", marker.Path)
	}
	if marker.Label != "Trip Photos" {
		t.Errorf("Label = %q, want %q", marker.Label, "Trip Photos")
	}
	if marker.Segment != "Trip_Photos" {
		t.Errorf("Segment = %q, want %q", marker.Segment, "Trip_Photos")
	}

	if !mem.Has(marker.Path) {
		t.Fatal("Marker object not stored")
	}
	if len(mem.Bytes(marker.Path)) == 0 {
		t.Error("Marker stored without placeholder content")
	}
	if meta := mem.Metadata(marker.Path); meta[store.MetaIsPreview] != "true" {
		t.Errorf("Marker metadata wrong: %v", meta)
	}
}

func TestCreateRejectsEmptyName(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := Create(context.Background(), mem, "u1", name); !errors.Is(err, ErrEmptyName) {
			t.Errorf("Create(%q) error = %v, want ErrEmptyName", name, err)
		}
	}
	if mem.Len() != 0 {
		t.Errorf("Rejected creates stored %d objects", mem.Len())
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		base       string
		wantFolder bool
		wantLabel  string
	}{
		{"folder marker", "folder__Trip_Photos", true, "Trip Photos"},
		{"single word folder", "folder__vacation", true, "vacation"},
		{"plain media", "my_photo.jpg", false, ""},
		{"prefix inside name", "my_folder__notes.txt", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := pathing.NamePaths("u1", "", tt.base, time.Now())
			isFolder, label := Classify(pair.Preview)
			if isFolder != tt.wantFolder || label != tt.wantLabel {
				t.Errorf("Classify(%q) = (%v, %q), want (%v, %q)",
					pair.Preview, isFolder, label, tt.wantFolder, tt.wantLabel)
			}
		})
	}
}

// Creating a folder then classifying its marker restores the label, modulo
// the documented underscore ambiguity.
func TestCreateClassifyRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLabel string
	}{
		{"plain", "vacation", "vacation"},
		{"spaces restored", "Trip Photos 2024", "Trip Photos 2024"},
		{"surrounding space trimmed", "  beach  ", "beach"},
		{"underscores become spaces", "a_b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := store.NewMemory()
			marker, err := Create(context.Background(), mem, "u1", tt.input)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if marker.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", marker.Label, tt.wantLabel)
			}

			isFolder, label := Classify(marker.Path)
			if !isFolder {
				t.Fatalf("Created marker %q not classified as folder", marker.Path)
			}
			if label != marker.Label {
				t.Errorf("Classify label %q differs from create label %q", label, marker.Label)
			}
		})
	}
}

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label    string
		expected string
	}{
		{"Trip Photos", "Trip_Photos"},
		{"  padded  ", "padded"},
		{"one", "one"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Segment(tt.label); got != tt.expected {
				t.Errorf("Segment(%q) = %q, want %q", tt.label, got, tt.expected)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	ctx := context.Background()

	marker, err := Create(ctx, mem, "u1", "old stuff")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := Delete(ctx, mem, marker.Path); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if mem.Has(marker.Path) {
		t.Error("Marker still stored after Delete")
	}
}

func TestDeleteRejectsNonMarker(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	pair := pathing.NamePaths("u1", "", "photo.jpg", time.Now())
	if err := mem.Put(context.Background(), pair.Preview, []byte("x"), "image/jpeg", nil); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if err := Delete(context.Background(), mem, pair.Preview); err == nil {
		t.Fatal("Delete accepted a plain media path")
	}
	if !mem.Has(pair.Preview) {
		t.Error("Plain media object was removed")
	}
}
