package store

import (
	"context"
	"fmt"
)

// Metadata keys attached to every stored object.
const (
	MetaOriginalName = "originalName"
	MetaIsPreview    = "isPreview"
	MetaExtension    = "extension"
	MetaCreationDate = "creationDate"
)

// Page is one page of a prefix listing. NextCursor is the opaque
// continuation token to pass to the next List call; empty means the listing
// is exhausted.
type Page struct {
	Paths      []string
	NextCursor string
}

// Store is the object-store capability the gallery core is built on.
// Implementations are a flat namespace: a path is just a key, any
// folder-like structure is a naming convention of the caller.
type Store interface {
	// Put writes data under path. Metadata is a flat string mapping stored
	// alongside the object.
	Put(ctx context.Context, path string, data []byte, contentType string, metadata map[string]string) error

	// ResolveURL returns a time-bounded, fetchable URL for a stored object.
	ResolveURL(ctx context.Context, path string) (string, error)

	// List returns up to pageSize object paths under prefix. Pass the
	// previous Page's NextCursor to continue, or "" for the first page.
	List(ctx context.Context, prefix string, pageSize int, cursor string) (Page, error)

	// Remove deletes the object at path.
	Remove(ctx context.Context, path string) error
}

// TransferError wraps a failed store operation with the operation name and
// the object path it targeted.
type TransferError struct {
	Op   string
	Path string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// transferErr builds a TransferError unless err is nil.
func transferErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &TransferError{Op: op, Path: path, Err: err}
}
