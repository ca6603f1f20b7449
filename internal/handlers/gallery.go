package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cloud-gallery/internal/folders"
	"cloud-gallery/internal/gallery"
	"cloud-gallery/internal/layout"
)

// GalleryResponse is one page of gallery entries plus paging state.
type GalleryResponse struct {
	Entries   []gallery.Entry `json:"entries"`
	Total     int             `json:"total"`
	Exhausted bool            `json:"exhausted"`
}

// Gallery returns the next page of the caller's gallery session for the
// given folder scope. fresh=1 discards the session and starts over from
// the first page, which is also how a scope switch begins.
//
// GET /api/gallery?folder=&fresh=
func (h *Handlers) Gallery(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == "" {
		return
	}

	folder := folders.Segment(r.URL.Query().Get("folder"))
	fresh := r.URL.Query().Get("fresh") == "1"

	sess := h.session(user, folder, fresh)
	entries, err := sess.NextPage(r.Context())
	if err != nil {
		if errors.Is(err, gallery.ErrListInFlight) {
			writeJSONError(w, err.Error(), http.StatusConflict)
			return
		}
		writeJSONError(w, "listing failed", http.StatusBadGateway)
		return
	}

	if entries == nil {
		entries = []gallery.Entry{}
	}
	writeJSON(w, GalleryResponse{
		Entries:   entries,
		Total:     len(sess.Entries()),
		Exhausted: sess.Exhausted(),
	})
}

// Original lazily resolves the original-object URL paired with a preview
// path. Folder markers have no original to open.
//
// GET /api/original?folder=&path=
func (h *Handlers) Original(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == "" {
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSONError(w, "path is required", http.StatusBadRequest)
		return
	}
	if isFolder, _ := folders.Classify(path); isFolder {
		writeJSONError(w, "folder entries have no original", http.StatusBadRequest)
		return
	}

	folder := folders.Segment(r.URL.Query().Get("folder"))
	sess := h.session(user, folder, false)

	url, err := sess.OriginalURL(r.Context(), path)
	if err != nil {
		writeJSONError(w, "could not resolve original", http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]string{"url": url})
}

// Span computes the masonry row span for a tile.
//
// GET /api/layout/span?aspect=&width=
func (h *Handlers) Span(w http.ResponseWriter, r *http.Request) {
	aspect, err := strconv.ParseFloat(r.URL.Query().Get("aspect"), 64)
	if err != nil {
		writeJSONError(w, "aspect must be a number", http.StatusBadRequest)
		return
	}
	width, err := strconv.Atoi(r.URL.Query().Get("width"))
	if err != nil || width < 1 {
		writeJSONError(w, "width must be a positive integer", http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]int{
		"rowSpan": layout.SpanFor(aspect, width),
		"columns": layout.Columns(width),
	})
}
