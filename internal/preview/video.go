package preview

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"cloud-gallery/internal/logging"
	"cloud-gallery/internal/mediatypes"
)

const (
	// captureSeekSeconds is where a frame is captured by default. Near the
	// start but not 0: the very first frames of many encodes are black.
	captureSeekSeconds = 1.0

	// captureTimeout is the hard deadline for the whole capture, covering
	// decoders that never finish seeking.
	captureTimeout = 5 * time.Second
)

// videoPreview extracts a single frame from a video payload and encodes it
// as a JPEG bounded by VideoMaxWidth x VideoMaxHeight.
//
// The capture timestamp is min(captureSeekSeconds, duration/2). When the
// seeked pass produces nothing, a best-effort no-seek pass takes whatever
// frame the decoder yields first. Both passes share one hard deadline;
// hitting it is a terminal decode failure for this file only.
func videoPreview(ctx context.Context, file *mediatypes.MediaFile) ([]byte, error) {
	tmp, err := os.CreateTemp("", "gallery-frame-*"+file.Ext())
	if err != nil {
		return nil, fmt.Errorf("failed to stage video payload: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(file.Data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to stage video payload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to stage video payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, captureTimeout)
	defer cancel()

	seek := captureSeekSeconds
	if duration, err := probeDuration(ctx, tmp.Name()); err == nil && duration/2 < seek {
		seek = duration / 2
	}

	frame, err := extractFrame(ctx, tmp.Name(), seek)
	if err != nil {
		logging.Debug("Seeked frame capture failed for %s: %v, trying first frame", file.Name, err)
		frame, err = extractFrame(ctx, tmp.Name(), -1)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("frame capture timed out after %s: %w", captureTimeout, ctx.Err())
		}
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("failed to decode captured frame: %w", err)
	}

	return encodeThumbnail(img, VideoMaxWidth, VideoMaxHeight, VideoQuality)
}

// probeDuration reads the container duration in seconds via ffprobe.
func probeDuration(ctx context.Context, path string) (float64, error) {
	ffprobePath, err := exec.LookPath("ffprobe")
	if err != nil {
		return 0, fmt.Errorf("ffprobe not found: %w", err)
	}

	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable duration %q: %w", strings.TrimSpace(string(out)), err)
	}
	return duration, nil
}

// extractFrame captures one frame as PNG bytes. A negative seek disables
// seeking and takes the first frame the decoder reports ready.
func extractFrame(ctx context.Context, path string, seek float64) ([]byte, error) {
	ffmpegPath, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found: %w", err)
	}

	args := []string{}
	if seek >= 0 {
		args = append(args, "-ss", strconv.FormatFloat(seek, 'f', 3, 64))
	}
	args = append(args,
		"-i", path,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	)

	cmd := exec.CommandContext(ctx, ffmpegPath, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg failed: %v, stderr: %s", err, stderr.String())
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("ffmpeg produced no output for %s", path)
	}

	return stdout.Bytes(), nil
}
