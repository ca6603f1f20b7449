package uploader

import (
	"context"
	"errors"
	"sync"
	"time"

	"cloud-gallery/internal/logging"
	"cloud-gallery/internal/mediatypes"
	"cloud-gallery/internal/metrics"
	"cloud-gallery/internal/pathing"
	"cloud-gallery/internal/preview"
	"cloud-gallery/internal/store"
)

// DefaultBatchSize bounds intra-batch concurrency when the caller does not
// tune it. Matches the practical concurrency ceiling of a typical object
// store endpoint.
const DefaultBatchSize = 10

// ErrNoFiles is returned when Ingest is called with an empty selection.
var ErrNoFiles = errors.New("no files selected")

// Result describes one successfully ingested file. PreviewPath and
// PreviewURL are empty when the file's type has no preview representation.
type Result struct {
	PreviewPath  string `json:"previewPath,omitempty"`
	PreviewURL   string `json:"previewUrl,omitempty"`
	OriginalPath string `json:"originalPath"`
	OriginalURL  string `json:"originalUrl"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
}

// Scheduler ingests file selections into the object store: previews are
// generated and both objects of each pair uploaded, batch by batch.
type Scheduler struct {
	store store.Store
}

// New creates a Scheduler writing to the given store.
func New(s store.Store) *Scheduler {
	return &Scheduler{store: s}
}

// Ingest processes files in consecutive batches of batchSize (minimum 1).
// Batches run strictly in sequence; every file within a batch is processed
// concurrently. Per-file failures are isolated: they mark that file's
// status error and never abort siblings or the batch.
//
// The returned slice is indexed like files; entries for failed files carry
// only Name and Size. The status map is the sole source of truth for
// outcome: after a normal return every file is done or error.
//
// Cancelling ctx stops the scheduler between batches only — a batch that
// has started always runs every item to a terminal status. Files in
// batches never started remain idle and ctx.Err() is returned.
func (s *Scheduler) Ingest(ctx context.Context, files []*mediatypes.MediaFile, userID, folder string, batchSize int) ([]Result, *StatusMap, error) {
	if len(files) == 0 {
		return nil, nil, ErrNoFiles
	}
	if batchSize < 1 {
		batchSize = 1
	}

	results := make([]Result, len(files))
	statuses := newStatusMap(len(files))

	updates := make(chan statusUpdate, batchSize*2)
	var collector sync.WaitGroup
	collector.Add(1)
	go func() {
		defer collector.Done()
		for u := range updates {
			statuses.set(u.index, u.status)
		}
	}()

	var stopErr error
	for start := 0; start < len(files); start += batchSize {
		// Stop requests are honored here, never mid-batch.
		if err := ctx.Err(); err != nil {
			stopErr = err
			break
		}

		end := start + batchSize
		if end > len(files) {
			end = len(files)
		}

		batchStart := time.Now()
		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(index int) {
				defer wg.Done()
				s.processFile(ctx, files[index], userID, folder, index, results, updates)
			}(i)
		}
		wg.Wait()

		metrics.UploadBatchDuration.Observe(time.Since(batchStart).Seconds())
		metrics.UploadBatchFiles.Observe(float64(end - start))
		logging.Debug("Batch %d-%d complete in %v", start, end-1, time.Since(batchStart))
	}

	close(updates)
	collector.Wait()

	return results, statuses, stopErr
}

// processFile runs the full pipeline for one file. Each step that fails
// marks the file error and returns; nothing here may affect another file.
func (s *Scheduler) processFile(ctx context.Context, file *mediatypes.MediaFile, userID, folder string, index int, results []Result, updates chan<- statusUpdate) {
	updates <- statusUpdate{index, StatusUploading}
	results[index] = Result{Name: file.Name, Size: file.Size()}

	fail := func(err error) {
		logging.Warn("Upload failed for %s: %v", file.Name, err)
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		updates <- statusUpdate{index, StatusError}
	}

	previewBytes, err := preview.Generate(ctx, file)
	if err != nil {
		// A video that hit the capture deadline is terminal for this file;
		// every other decode failure degrades to "no preview" and the
		// original still uploads.
		if errors.Is(err, context.DeadlineExceeded) {
			fail(err)
			return
		}
		logging.Debug("No preview for %s: %v", file.Name, err)
		previewBytes = nil
	}

	paths := pathing.NamePaths(userID, folder, file.Name, file.ModTime)

	if previewBytes != nil {
		if err := s.store.Put(ctx, paths.Preview, previewBytes, "image/jpeg", objectMetadata(file, true)); err != nil {
			fail(err)
			return
		}
	}

	if err := s.store.Put(ctx, paths.Original, file.Data, mediatypes.MimeFor(file.Ext()), objectMetadata(file, false)); err != nil {
		fail(err)
		return
	}

	var previewURL string
	if previewBytes != nil {
		previewURL, err = s.store.ResolveURL(ctx, paths.Preview)
		if err != nil {
			fail(err)
			return
		}
	}
	originalURL, err := s.store.ResolveURL(ctx, paths.Original)
	if err != nil {
		fail(err)
		return
	}

	result := Result{
		OriginalPath: paths.Original,
		OriginalURL:  originalURL,
		Name:         file.Name,
		Size:         file.Size(),
	}
	if previewBytes != nil {
		result.PreviewPath = paths.Preview
		result.PreviewURL = previewURL
	}
	results[index] = result

	metrics.UploadsTotal.WithLabelValues("done").Inc()
	updates <- statusUpdate{index, StatusDone}
}

// objectMetadata builds the flat metadata mapping stored with each object.
func objectMetadata(file *mediatypes.MediaFile, isPreview bool) map[string]string {
	created := file.ModTime
	if created.IsZero() {
		created = time.Now()
	}
	isPrev := "false"
	if isPreview {
		isPrev = "true"
	}
	return map[string]string{
		store.MetaOriginalName: file.Name,
		store.MetaIsPreview:    isPrev,
		store.MetaExtension:    file.Ext(),
		store.MetaCreationDate: created.Format(time.RFC3339),
	}
}
