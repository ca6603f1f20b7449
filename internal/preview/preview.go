package preview

import (
	"context"
	"fmt"

	"cloud-gallery/internal/logging"
	"cloud-gallery/internal/mediatypes"
	"cloud-gallery/internal/metrics"
)

const (
	// MaxImageDimension bounds both sides of an image preview.
	MaxImageDimension = 400
	// ImageQuality is the JPEG quality for image and placeholder previews.
	ImageQuality = 25

	// VideoMaxWidth and VideoMaxHeight bound a captured video frame.
	VideoMaxWidth  = 640
	VideoMaxHeight = 480
	// VideoQuality is the JPEG quality for video frame previews.
	VideoQuality = 50
)

// DecodeError reports that a file could not be decoded into a preview.
// For images and PDFs the scheduler degrades it to "no preview"; for a
// video that hit the hard capture deadline it is terminal for that file.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Generate produces JPEG preview bytes for a media file, or (nil, nil) when
// the file type has no preview representation. The variant is selected once
// from the filename extension; each branch carries only the decode path
// valid for its type.
func Generate(ctx context.Context, file *mediatypes.MediaFile) ([]byte, error) {
	fileType := file.Type()

	data, err := generate(ctx, file, fileType)
	if err != nil {
		metrics.PreviewsGenerated.WithLabelValues(string(fileType), "error").Inc()
		return nil, &DecodeError{Name: file.Name, Err: err}
	}
	if data != nil {
		metrics.PreviewsGenerated.WithLabelValues(string(fileType), "success").Inc()
	}
	return data, nil
}

func generate(ctx context.Context, file *mediatypes.MediaFile, fileType mediatypes.FileType) ([]byte, error) {
	switch fileType {
	case mediatypes.FileTypeImage:
		return imagePreview(file.Data)
	case mediatypes.FileTypeVideo:
		return videoPreview(ctx, file)
	case mediatypes.FileTypePDF:
		// No content rendering: PDFs get the bundled placeholder pushed
		// through the same thumbnail conventions.
		return placeholderPreview()
	default:
		logging.Debug("No preview for %s (type %s)", file.Name, fileType)
		return nil, nil
	}
}
