// Package uploader schedules batched, concurrent media ingestion.
//
// A selection of files is partitioned into consecutive batches. Batches
// run strictly in sequence; files within a batch run concurrently. This
// bounds peak connections and decode memory while still overlapping
// network latency, and the batch size is caller-tunable.
//
// Per file the pipeline generates a preview (when the type supports one),
// writes the preview and original objects under paired paths, and resolves
// their fetch URLs. Failure containment is per file: one file's error
// never blocks, aborts, or rolls back its siblings.
//
// Outcome is reported exclusively through the StatusMap. All status writes
// are funneled over a channel into a single collector goroutine, keeping
// the single-writer invariant explicit.
package uploader
