// Package mediatypes classifies files by extension for the ingestion
// pipeline.
//
// Classification drives preview generation dispatch:
//   - Images: jpg, jpeg, png, gif, bmp, webp, tiff, heic, heif
//   - Videos: mp4, mkv, avi, mov, wmv, flv, webm, m4v, mpeg, mpg, 3gp, ts
//   - Documents: pdf (placeholder thumbnail only)
//
// Anything else is FileTypeOther: the original is still uploaded but no
// preview object is written for it.
package mediatypes
