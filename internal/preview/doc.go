// Package preview generates lightweight JPEG previews for uploaded media.
//
// Dispatch is by filename extension, selected once per file:
//   - Images: decoded (libvips fast path when available, pure-Go imaging
//     otherwise), downscaled to fit 400x400, JPEG quality 25. Never
//     upscaled.
//   - Videos: one frame captured via ffmpeg near the start of the stream
//     (min of 1s and half the duration), downscaled to fit 640x480, JPEG
//     quality 50. A no-seek fallback pass covers decoders that never
//     complete a seek; a hard 5s deadline bounds the whole capture.
//   - PDFs: a bundled placeholder image re-encoded through the image
//     thumbnail conventions. No document content is rendered.
//   - Anything else: no preview (the original is still uploaded).
//
// All decode failures surface as *DecodeError. Transient resources (staged
// temp files, decoder processes) are released on every path.
package preview
