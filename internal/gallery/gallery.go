package gallery

import (
	"context"
	"errors"
	"sync"

	"cloud-gallery/internal/folders"
	"cloud-gallery/internal/logging"
	"cloud-gallery/internal/metrics"
	"cloud-gallery/internal/pathing"
	"cloud-gallery/internal/store"
)

// DefaultPageSize is the fixed page size of gallery listings.
const DefaultPageSize = 20

// ErrListInFlight rejects a second list call while one is outstanding for
// the same session.
var ErrListInFlight = errors.New("a list call is already in flight for this scope")

// Entry is one gallery item: a preview object resolved to a fetchable URL,
// classified as media or virtual folder.
type Entry struct {
	Path       string `json:"path"`
	PreviewURL string `json:"previewUrl"`
	IsFolder   bool   `json:"isFolder"`
	Label      string `json:"label,omitempty"`
}

// ListPage retrieves one page of preview objects under the (userID, folder)
// scope, resolving each entry's fetch URL before returning it. The returned
// cursor is the store's continuation token, forwarded unchanged; empty
// means the listing is exhausted. Pass "" to start from the first page.
func ListPage(ctx context.Context, s store.Store, userID, folder string, pageSize int, cursor string) ([]Entry, string, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	page, err := s.List(ctx, pathing.PreviewScope(userID, folder), pageSize, cursor)
	if err != nil {
		return nil, "", err
	}

	entries := make([]Entry, 0, len(page.Paths))
	for _, path := range page.Paths {
		url, err := s.ResolveURL(ctx, path)
		if err != nil {
			return nil, "", err
		}
		isFolder, label := folders.Classify(path)
		entries = append(entries, Entry{
			Path:       path,
			PreviewURL: url,
			IsFolder:   isFolder,
			Label:      label,
		})
	}

	metrics.GalleryPagesTotal.Inc()
	metrics.GalleryEntriesTotal.Add(float64(len(entries)))
	return entries, page.NextCursor, nil
}

// Session is one gallery browsing session for a fixed (userID, folder)
// scope. It threads the pagination cursor, accumulates entries, and lazily
// resolves original URLs. Changing folder means discarding the session and
// starting a new one; a held cursor is never valid across scopes.
type Session struct {
	store    store.Store
	userID   string
	folder   string
	pageSize int

	mu           sync.Mutex
	inFlight     bool
	started      bool
	exhausted    bool
	cursor       string
	entries      []Entry
	originalURLs map[string]string
}

// NewSession creates a session scoped to (userID, folder). pageSize <= 0
// uses DefaultPageSize.
func NewSession(s store.Store, userID, folder string, pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Session{
		store:        s,
		userID:       userID,
		folder:       folder,
		pageSize:     pageSize,
		originalURLs: make(map[string]string),
	}
}

// NextPage fetches the next page and appends it to the session's entries.
// Paging is monotonic: an unbroken session never re-returns an entry.
// Returns (nil, nil) once the listing is exhausted. Only one NextPage may
// be outstanding per session.
func (s *Session) NextPage(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrListInFlight
	}
	if s.started && s.exhausted {
		s.mu.Unlock()
		return nil, nil
	}
	s.inFlight = true
	cursor := s.cursor
	s.mu.Unlock()

	entries, next, err := ListPage(ctx, s.store, s.userID, s.folder, s.pageSize, cursor)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		return nil, err
	}

	s.started = true
	s.cursor = next
	s.exhausted = next == ""
	s.entries = append(s.entries, entries...)

	logging.Debug("Gallery page for %s/%s: %d entries (exhausted: %v)",
		s.userID, s.folder, len(entries), s.exhausted)
	return entries, nil
}

// Entries returns a copy of all entries accumulated so far.
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

// Exhausted reports whether every page has been fetched.
func (s *Session) Exhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started && s.exhausted
}

// OriginalURL resolves the fetch URL of the original object paired with a
// preview path. Resolution is lazy (first open only) and cached for the
// session's lifetime, keyed by object path so the cache survives entry
// filtering or reordering. The result is never persisted.
func (s *Session) OriginalURL(ctx context.Context, previewPath string) (string, error) {
	s.mu.Lock()
	if url, ok := s.originalURLs[previewPath]; ok {
		s.mu.Unlock()
		return url, nil
	}
	s.mu.Unlock()

	url, err := s.store.ResolveURL(ctx, pathing.OriginalFromPreview(previewPath))
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.originalURLs[previewPath] = url
	s.mu.Unlock()
	return url, nil
}

// Forget drops an entry from the accumulated list and its cached original
// URL. Called by the presentation layer after it has acted on a deletion
// result; the session itself never removes entries.
func (s *Session) Forget(previewPath string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.originalURLs, previewPath)
	for i, e := range s.entries {
		if e.Path == previewPath {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}
