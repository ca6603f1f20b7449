package handlers

import (
	"errors"
	"net/http"

	"cloud-gallery/internal/deleter"
	"cloud-gallery/internal/folders"
)

// DeleteResponse reports the terminal state of one entry deletion. Partial
// deletion is surfaced distinctly so the UI can warn instead of reporting
// success; the entry stays in the caller's list until the caller acts on
// the result.
type DeleteResponse struct {
	State           deleter.State `json:"state"`
	PreviewRemoved  bool          `json:"previewRemoved"`
	OriginalRemoved bool          `json:"originalRemoved"`
	Error           string        `json:"error,omitempty"`
}

// DeleteEntry removes the (preview, original) pair of a gallery entry. The
// confirmation modal runs client-side; this endpoint receives the
// confirmed intent and drives the coordinator through its states.
//
// DELETE /api/entry?folder=&path=
func (h *Handlers) DeleteEntry(w http.ResponseWriter, r *http.Request) {
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
		writeJSONError(w, "use the folders endpoint to delete a folder", http.StatusBadRequest)
		return
	}

	coord := deleter.New(h.store)
	if err := coord.Request(); err != nil {
		writeJSONError(w, err.Error(), http.StatusConflict)
		return
	}

	err := coord.Confirm(r.Context(), path)
	resp := DeleteResponse{State: coord.State()}

	var partial *deleter.PartialDeleteError
	switch {
	case err == nil:
		resp.PreviewRemoved = true
		resp.OriginalRemoved = true
		folder := folders.Segment(r.URL.Query().Get("folder"))
		h.forgetEntry(user, folder, path)
		writeJSON(w, resp)
	case errors.As(err, &partial):
		resp.PreviewRemoved = partial.PreviewRemoved
		resp.OriginalRemoved = partial.OriginalRemoved
		resp.Error = partial.Error()
		w.WriteHeader(http.StatusMultiStatus)
		writeJSON(w, resp)
	default:
		resp.Error = err.Error()
		w.WriteHeader(http.StatusBadGateway)
		writeJSON(w, resp)
	}
}
