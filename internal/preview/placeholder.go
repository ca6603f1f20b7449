package preview

import (
	_ "embed"
	"fmt"
)

// placeholderAsset is the bundled stand-in thumbnail for files that cannot
// be content-rendered (PDFs) and for virtual folder markers.
//
//go:embed assets/placeholder.png
var placeholderAsset []byte

// placeholderPreview re-encodes the bundled placeholder through the normal
// image thumbnail conventions.
func placeholderPreview() ([]byte, error) {
	img, err := decodeImage(placeholderAsset)
	if err != nil {
		return nil, fmt.Errorf("bundled placeholder is unreadable: %w", err)
	}
	return encodeThumbnail(img, MaxImageDimension, MaxImageDimension, ImageQuality)
}

// Placeholder returns the placeholder thumbnail bytes. Folder markers are
// written with this content so they render like any other preview object.
func Placeholder() ([]byte, error) {
	return placeholderPreview()
}
