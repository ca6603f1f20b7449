package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

type memObject struct {
	data        []byte
	contentType string
	metadata    map[string]string
}

// Memory is an in-process Store used for local development and tests.
// Listing order is deterministic (lexicographic by path) and the cursor is
// a numeric offset encoded as a string, opaque to callers like any other
// cursor.
type Memory struct {
	mu      sync.Mutex
	objects map[string]memObject
	faults  map[string]error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		objects: make(map[string]memObject),
		faults:  make(map[string]error),
	}
}

// FailWith makes the given operation ("put", "resolve-url", "remove",
// "list") fail with err whenever it targets path. Used to simulate store
// faults in tests.
func (m *Memory) FailWith(op, path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults[op+" "+path] = err
}

func (m *Memory) faultFor(op, path string) error {
	if err, ok := m.faults[op+" "+path]; ok {
		return err
	}
	return nil
}

// Put stores a copy of data under path.
func (m *Memory) Put(_ context.Context, path string, data []byte, contentType string, metadata map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.faultFor("put", path); err != nil {
		return transferErr("put", path, err)
	}

	meta := make(map[string]string, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}
	m.objects[path] = memObject{
		data:        append([]byte(nil), data...),
		contentType: contentType,
		metadata:    meta,
	}
	return nil
}

// ResolveURL returns a synthetic memory:// URL for a stored object.
func (m *Memory) ResolveURL(_ context.Context, path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.faultFor("resolve-url", path); err != nil {
		return "", transferErr("resolve-url", path, err)
	}
	if _, ok := m.objects[path]; !ok {
		return "", transferErr("resolve-url", path, fmt.Errorf("object not found"))
	}
	return "memory://" + path, nil
}

// List returns one page of paths under prefix in lexicographic order.
func (m *Memory) List(_ context.Context, prefix string, pageSize int, cursor string) (Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.faultFor("list", prefix); err != nil {
		return Page{}, transferErr("list", prefix, err)
	}

	var matched []string
	for path := range m.objects {
		if strings.HasPrefix(path, prefix) {
			matched = append(matched, path)
		}
	}
	sort.Strings(matched)

	offset := 0
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 0 {
			return Page{}, transferErr("list", prefix, fmt.Errorf("invalid cursor %q", cursor))
		}
		offset = n
	}
	if offset > len(matched) {
		offset = len(matched)
	}

	end := offset + pageSize
	if pageSize <= 0 || end > len(matched) {
		end = len(matched)
	}

	page := Page{Paths: append([]string(nil), matched[offset:end]...)}
	if end < len(matched) {
		page.NextCursor = strconv.Itoa(end)
	}
	return page, nil
}

// Remove deletes the object at path. Removing a missing object fails, which
// mirrors how a real backend reports it.
func (m *Memory) Remove(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.faultFor("remove", path); err != nil {
		return transferErr("remove", path, err)
	}
	if _, ok := m.objects[path]; !ok {
		return transferErr("remove", path, fmt.Errorf("object not found"))
	}
	delete(m.objects, path)
	return nil
}

// Has reports whether an object exists at path.
func (m *Memory) Has(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[path]
	return ok
}

// Bytes returns a copy of the stored object data, or nil if absent.
func (m *Memory) Bytes(path string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[path]
	if !ok {
		return nil
	}
	return append([]byte(nil), obj.data...)
}

// Metadata returns a copy of the stored object metadata, or nil if absent.
func (m *Memory) Metadata(path string) map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[path]
	if !ok {
		return nil
	}
	meta := make(map[string]string, len(obj.metadata))
	for k, v := range obj.metadata {
		meta[k] = v
	}
	return meta
}

// Len returns the number of stored objects.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
