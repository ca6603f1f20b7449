package mediatypes

import (
	"path/filepath"
	"strings"
	"time"
)

// MediaFile is one user-supplied file handed to the ingestion pipeline.
// The payload is opaque binary data owned by the caller for the duration of
// one ingestion call; the pipeline never mutates it.
type MediaFile struct {
	Name     string
	Data     []byte
	MimeType string
	ModTime  time.Time
}

// Ext returns the lowercased filename extension including the leading dot.
func (f *MediaFile) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// Type returns the ingestion category, decided once from the extension.
func (f *MediaFile) Type() FileType {
	return TypeFor(f.Ext())
}

// Size returns the payload size in bytes.
func (f *MediaFile) Size() int64 {
	return int64(len(f.Data))
}
