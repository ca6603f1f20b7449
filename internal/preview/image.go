package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"cloud-gallery/internal/logging"

	// Image format decoders
	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP format support
)

// imagePreview decodes an image and re-encodes it as a JPEG thumbnail
// bounded by MaxImageDimension on both sides. Aspect ratio is preserved and
// images already within bounds are never upscaled.
func imagePreview(data []byte) ([]byte, error) {
	if thumb, err := vipsThumbnail(data, MaxImageDimension, ImageQuality); err == nil {
		return thumb, nil
	} else if vipsReady() {
		logging.Debug("vips thumbnail failed, falling back to imaging: %v", err)
	}

	img, err := decodeImage(data)
	if err != nil {
		return nil, err
	}
	return encodeThumbnail(img, MaxImageDimension, MaxImageDimension, ImageQuality)
}

// decodeImage decodes image bytes with auto-orientation, falling back to
// the registered stdlib decoders when imaging cannot handle the format.
func decodeImage(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err == nil {
		return img, nil
	}
	logging.Debug("imaging.Decode failed: %v, trying standard decoders", err)

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}
	logging.Debug("Decoded image format: %s", format)
	return img, nil
}

// encodeThumbnail downscales img to fit within maxW x maxH (never
// upscaling) and encodes it as a JPEG at the given quality.
func encodeThumbnail(img image.Image, maxW, maxH, quality int) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() > maxW || bounds.Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
