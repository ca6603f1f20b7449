package mediatypes

import (
	"testing"
	"time"
)

func TestTypeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext      string
		expected FileType
	}{
		{".jpg", FileTypeImage},
		{".jpeg", FileTypeImage},
		{".png", FileTypeImage},
		{".webp", FileTypeImage},
		{".heic", FileTypeImage},
		{".mp4", FileTypeVideo},
		{".mov", FileTypeVideo},
		{".webm", FileTypeVideo},
		{".pdf", FileTypePDF},
		{".txt", FileTypeOther},
		{".exe", FileTypeOther},
		{"", FileTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := TypeFor(tt.ext); got != tt.expected {
				t.Errorf("TypeFor(%q) = %v, want %v", tt.ext, got, tt.expected)
			}
		})
	}
}

func TestMimeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext      string
		expected string
	}{
		{".jpg", "image/jpeg"},
		{".png", "image/png"},
		{".mp4", "video/mp4"},
		{".pdf", "application/pdf"},
		{".unknown", "application/octet-stream"},
		{"", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := MimeFor(tt.ext); got != tt.expected {
				t.Errorf("MimeFor(%q) = %q, want %q", tt.ext, got, tt.expected)
			}
		})
	}
}

func TestMediaFile(t *testing.T) {
	t.Parallel()

	f := &MediaFile{
		Name:    "Holiday Snap.JPG",
		Data:    []byte("not really a jpeg"),
		ModTime: time.Now(),
	}

	if got := f.Ext(); got != ".jpg" {
		t.Errorf("Ext() = %q, want lowercased %q", got, ".jpg")
	}
	if got := f.Type(); got != FileTypeImage {
		t.Errorf("Type() = %v, want %v", got, FileTypeImage)
	}
	if got := f.Size(); got != int64(len(f.Data)) {
		t.Errorf("Size() = %d, want %d", got, len(f.Data))
	}
}

func TestHasPreview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext      string
		expected bool
	}{
		{".jpg", true},
		{".mp4", true},
		{".pdf", true},
		{".txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := HasPreview(tt.ext); got != tt.expected {
				t.Errorf("HasPreview(%q) = %v, want %v", tt.ext, got, tt.expected)
			}
		})
	}
}
