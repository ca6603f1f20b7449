package pathing

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// Root is the namespace root every object path lives under.
	Root = "uploads/users"

	// PreviewSegment and OriginalSegment are the paired path segments that
	// distinguish a preview object from the original it was derived from.
	// The two paths of one logical file differ only in this segment, which
	// is what lets a preview be mapped back to its original with a single
	// string substitution.
	PreviewSegment  = "previews"
	OriginalSegment = "original"
)

// dateStampLayout is embedded in every token so that lexicographic listings
// sort approximately chronologically even when the store itself guarantees
// no ordering.
const dateStampLayout = "20060102_150405"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Pair holds the two object paths derived for one logical file.
type Pair struct {
	Preview  string
	Original string
}

// Sanitize collapses every whitespace run in name to a single underscore.
func Sanitize(name string) string {
	return whitespaceRun.ReplaceAllString(name, "_")
}

// NamePaths derives the (preview, original) object paths for a file.
// The token embeds a human-sortable date stamp from modTime (current time
// when modTime is zero) immediately before a freshly generated UUID, so two
// calls with identical arguments never collide.
//
// Layout: uploads/users/{userID}/{folder?}/{previews|original}/{token}
func NamePaths(userID, folder, name string, modTime time.Time) Pair {
	if modTime.IsZero() {
		modTime = time.Now()
	}
	token := modTime.Format(dateStampLayout) + "_" + uuid.New().String() + "_" + Sanitize(name)

	base := Root + "/" + userID
	if folder != "" {
		base += "/" + folder
	}

	return Pair{
		Preview:  base + "/" + PreviewSegment + "/" + token,
		Original: base + "/" + OriginalSegment + "/" + token,
	}
}

// OriginalFromPreview maps a preview object path to its original's path by
// substituting the previews segment. This is the single substitution the
// pairing invariant allows; it is used when an entry is opened or deleted.
func OriginalFromPreview(previewPath string) string {
	return strings.Replace(previewPath, "/"+PreviewSegment+"/", "/"+OriginalSegment+"/", 1)
}

// PreviewScope returns the list prefix covering all preview objects of a
// (userID, folder) scope. An empty folder scopes to the user's root.
func PreviewScope(userID, folder string) string {
	base := Root + "/" + userID
	if folder != "" {
		base += "/" + folder
	}
	return base + "/" + PreviewSegment + "/"
}

// Token returns the trailing token segment of an object path.
func Token(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// BaseName strips the date stamp and UUID from a token, returning the
// sanitized file name the token was built from. Returns the token unchanged
// if it does not carry the expected shape.
func BaseName(token string) string {
	// {YYYYMMDD}_{HHMMSS}_{uuid}_{name}: name starts after the third group.
	parts := strings.SplitN(token, "_", 4)
	if len(parts) == 4 {
		return parts[3]
	}
	return token
}
