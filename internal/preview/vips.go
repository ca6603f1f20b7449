package preview

import (
	"fmt"
	"sync"

	"github.com/davidbyttow/govips/v2/vips"

	"cloud-gallery/internal/logging"
)

var (
	vipsOnce      sync.Once
	vipsAvailable bool
)

// InitVips starts libvips once at boot. When libvips is missing or fails to
// start, image previews silently use the pure-Go path instead.
func InitVips() {
	vipsOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				logging.Warn("libvips unavailable, using pure-Go image path: %v", r)
				vipsAvailable = false
			}
		}()

		vips.LoggingSettings(func(domain string, level vips.LogLevel, msg string) {
			switch {
			case level <= vips.LogLevelError:
				logging.Error("[vips %s] %s", domain, msg)
			case level == vips.LogLevelWarning:
				logging.Warn("[vips %s] %s", domain, msg)
			default:
				logging.Debug("[vips %s] %s", domain, msg)
			}
		}, vips.LogLevelWarning)

		vips.Startup(&vips.Config{ReportLeaks: false})
		vipsAvailable = true
		logging.Info("libvips initialized for image previews")
	})
}

// ShutdownVips releases libvips resources at process exit.
func ShutdownVips() {
	if vipsAvailable {
		vips.Shutdown()
	}
}

func vipsReady() bool {
	return vipsAvailable
}

// vipsThumbnail produces a JPEG thumbnail bounded by maxDim using libvips'
// shrink-on-load path. SizeDown matches the no-upscale rule of the pure-Go
// path.
func vipsThumbnail(data []byte, maxDim, quality int) ([]byte, error) {
	if !vipsAvailable {
		return nil, fmt.Errorf("libvips not initialized")
	}

	ref, err := vips.NewThumbnailWithSizeFromBuffer(data, maxDim, maxDim, vips.InterestingNone, vips.SizeDown)
	if err != nil {
		return nil, fmt.Errorf("vips thumbnail failed: %w", err)
	}
	defer ref.Close()

	params := vips.NewJpegExportParams()
	params.Quality = quality
	params.StripMetadata = true

	out, _, err := ref.ExportJpeg(params)
	if err != nil {
		return nil, fmt.Errorf("vips jpeg export failed: %w", err)
	}
	return out, nil
}
