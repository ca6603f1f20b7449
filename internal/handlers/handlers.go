package handlers

import (
	"sync"

	"cloud-gallery/internal/gallery"
	"cloud-gallery/internal/startup"
	"cloud-gallery/internal/store"
	"cloud-gallery/internal/uploader"
)

// Handlers carries the service dependencies shared by all HTTP handlers.
type Handlers struct {
	store     store.Store
	scheduler *uploader.Scheduler
	config    *startup.Config

	mu       sync.Mutex
	sessions map[string]*gallery.Session
}

// New creates the handler set.
func New(s store.Store, config *startup.Config) *Handlers {
	return &Handlers{
		store:     s,
		scheduler: uploader.New(s),
		config:    config,
		sessions:  make(map[string]*gallery.Session),
	}
}

// session returns the gallery session for a (user, folder) scope, creating
// it on first use. fresh discards any existing session, which is how a
// caller starts paging over from the beginning: a held cursor is never
// reused across a restart or a scope change.
func (h *Handlers) session(userID, folder string, fresh bool) *gallery.Session {
	key := userID + "\x00" + folder

	h.mu.Lock()
	defer h.mu.Unlock()
	if sess, ok := h.sessions[key]; ok && !fresh {
		return sess
	}
	sess := gallery.NewSession(h.store, userID, folder, h.config.PageSize)
	h.sessions[key] = sess
	return sess
}

// forgetEntry drops a deleted entry from every session that may hold it.
func (h *Handlers) forgetEntry(userID, folder, path string) {
	h.mu.Lock()
	sess, ok := h.sessions[userID+"\x00"+folder]
	h.mu.Unlock()
	if ok {
		sess.Forget(path)
	}
}
