// Package store abstracts the object storage the gallery keeps media in.
//
// Two implementations are provided:
//   - MinIO: the production backend, speaking S3 via minio-go. Listing uses
//     ListObjectsV2 continuation tokens, which surface directly as the
//     opaque pagination cursors of the gallery.
//   - Memory: a mutex-guarded in-process map with deterministic ordering
//     and per-path fault injection. Used for local development
//     (STORE_BACKEND=memory) and throughout the test suites.
//
// All failures are reported as *TransferError carrying the operation and
// object path.
package store
