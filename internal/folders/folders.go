package folders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud-gallery/internal/logging"
	"cloud-gallery/internal/metrics"
	"cloud-gallery/internal/pathing"
	"cloud-gallery/internal/preview"
	"cloud-gallery/internal/store"
)

// MarkerPrefix is the reserved prefix that marks a preview object as a
// virtual folder. A marker's sanitized-name segment is this prefix followed
// by the folder name with whitespace replaced by underscores.
//
// The underscore encoding is lossy: a folder literally named "a_b" is
// indistinguishable from one created as "a b". Accepted ambiguity, kept for
// compatibility with already-stored objects.
const MarkerPrefix = "folder__"

// ErrEmptyName rejects empty or whitespace-only folder names.
var ErrEmptyName = errors.New("folder name must not be empty")

// Marker describes a created virtual folder.
type Marker struct {
	Path    string `json:"path"`
	Label   string `json:"label"`
	Segment string `json:"segment"`
}

// Create writes a folder marker into the user's root preview scope. The
// marker's content is the bundled placeholder thumbnail so it renders like
// any other preview object.
func Create(ctx context.Context, s store.Store, userID, name string) (Marker, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Marker{}, ErrEmptyName
	}

	markerName := MarkerPrefix + pathing.Sanitize(trimmed)
	paths := pathing.NamePaths(userID, "", markerName, time.Now())

	content, err := preview.Placeholder()
	if err != nil {
		return Marker{}, fmt.Errorf("failed to render folder marker: %w", err)
	}

	metadata := map[string]string{
		store.MetaOriginalName: markerName,
		store.MetaIsPreview:    "true",
		store.MetaExtension:    "",
		store.MetaCreationDate: time.Now().Format(time.RFC3339),
	}
	if err := s.Put(ctx, paths.Preview, content, "image/jpeg", metadata); err != nil {
		return Marker{}, err
	}

	_, label := Classify(paths.Preview)
	metrics.FoldersCreatedTotal.Inc()
	logging.Info("Created folder %q for user %s", label, userID)

	return Marker{
		Path:    paths.Preview,
		Label:   label,
		Segment: Segment(label),
	}, nil
}

// Classify inspects the trailing path segment of a preview object. Markers
// report isFolder true with the display label (prefix stripped, underscores
// restored to spaces); everything else is plain media.
//
// Gallery consumers must route a click on a folder entry to a scope change,
// never to a media viewer.
func Classify(path string) (isFolder bool, label string) {
	base := pathing.BaseName(pathing.Token(path))
	if !strings.HasPrefix(base, MarkerPrefix) {
		return false, ""
	}
	return true, strings.ReplaceAll(strings.TrimPrefix(base, MarkerPrefix), "_", " ")
}

// Segment converts a display label to the path segment that scopes list and
// upload calls after entering the folder.
func Segment(label string) string {
	return pathing.Sanitize(strings.TrimSpace(label))
}

// Delete removes a folder marker. Folders have no existence beyond their
// marker, so this is a single-object removal; objects previously uploaded
// under the folder's scope are untouched and simply become unreachable
// through the gallery until the folder is recreated.
func Delete(ctx context.Context, s store.Store, markerPath string) error {
	if isFolder, _ := Classify(markerPath); !isFolder {
		return fmt.Errorf("%s is not a folder marker", markerPath)
	}
	return s.Remove(ctx, markerPath)
}
