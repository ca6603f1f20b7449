package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"cloud-gallery/internal/folders"
)

// CreateFolderRequest names a new virtual folder.
type CreateFolderRequest struct {
	Name string `json:"name"`
}

// CreateFolder writes a folder marker into the caller's root scope. The
// response carries the scope segment the client switches to when entering
// the folder.
//
// POST /api/folders
func (h *Handlers) CreateFolder(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == "" {
		return
	}

	var req CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	marker, err := folders.Create(r.Context(), h.store, user, req.Name)
	if err != nil {
		if errors.Is(err, folders.ErrEmptyName) {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSONError(w, "folder creation failed", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, marker)
}

// DeleteFolder removes a folder marker. Objects stored under the folder's
// scope are untouched.
//
// DELETE /api/folders?path=
func (h *Handlers) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == "" {
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSONError(w, "path is required", http.StatusBadRequest)
		return
	}

	if err := folders.Delete(r.Context(), h.store, path); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadGateway)
		return
	}

	h.forgetEntry(user, "", path)
	writeJSON(w, map[string]string{"status": "deleted"})
}
