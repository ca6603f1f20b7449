package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"cloud-gallery/internal/folders"
	"cloud-gallery/internal/logging"
	"cloud-gallery/internal/mediatypes"
	"cloud-gallery/internal/uploader"
)

// maxUploadMemory bounds how much of a multipart body is buffered in
// memory before spilling to disk.
const maxUploadMemory = 64 << 20

// UploadResponse reports the outcome of one ingestion call. Statuses is
// keyed by the file's position in the submitted selection and is the sole
// source of truth for per-file outcome.
type UploadResponse struct {
	Results  []uploader.Result       `json:"results"`
	Statuses map[int]uploader.Status `json:"statuses"`
}

// Upload ingests a multipart file selection.
//
// POST /api/upload?folder=&batchSize=
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == "" {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSONError(w, "invalid multipart body", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logging.Warn("Failed to clean up multipart temp files: %v", err)
		}
	}()

	folder := folders.Segment(r.URL.Query().Get("folder"))

	batchSize := h.config.BatchSize
	if v := r.URL.Query().Get("batchSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSONError(w, "batchSize must be a positive integer", http.StatusBadRequest)
			return
		}
		batchSize = n
	}

	var files []*mediatypes.MediaFile
	for _, header := range r.MultipartForm.File["files"] {
		part, err := header.Open()
		if err != nil {
			writeJSONError(w, "unreadable file part", http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			writeJSONError(w, "unreadable file part", http.StatusBadRequest)
			return
		}
		files = append(files, &mediatypes.MediaFile{
			Name:     header.Filename,
			Data:     data,
			MimeType: header.Header.Get("Content-Type"),
			ModTime:  parseLastModified(r.FormValue("lastModified")),
		})
	}

	results, statuses, err := h.scheduler.Ingest(r.Context(), files, user, folder, batchSize)
	if err != nil {
		if errors.Is(err, uploader.ErrNoFiles) {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		// Stopped between batches: report what did finish.
		logging.Warn("Ingest stopped early: %v", err)
	}

	writeJSON(w, UploadResponse{Results: results, Statuses: statuses.Snapshot()})
}

// parseLastModified reads an optional epoch-milliseconds form value. Zero
// time defers the date stamp to the ingestion clock.
func parseLastModified(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
