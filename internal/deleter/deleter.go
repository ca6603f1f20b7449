package deleter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cloud-gallery/internal/logging"
	"cloud-gallery/internal/metrics"
	"cloud-gallery/internal/pathing"
	"cloud-gallery/internal/store"
)

// State is the deletion state machine position.
type State string

const (
	// StateIdle means no deletion is underway.
	StateIdle State = "idle"
	// StateConfirming means a deletion was requested and awaits the user.
	StateConfirming State = "confirming"
	// StateDeleting means the paired removal is executing.
	StateDeleting State = "deleting"
	// StateDone means both objects were removed.
	StateDone State = "done"
	// StatePartialError means at least one of the pair survived.
	StatePartialError State = "partialError"
)

// ErrNotConfirming reports a Confirm or Cancel outside the confirming
// state.
var ErrNotConfirming = errors.New("no deletion awaiting confirmation")

// PartialDeleteError reports that exactly one object of a (preview,
// original) pair was removed. It is distinct from full failure so the UI
// can warn instead of silently reporting success; the caller decides
// whether to drop the entry from its in-memory list.
type PartialDeleteError struct {
	PreviewPath     string
	PreviewRemoved  bool
	OriginalRemoved bool
	Err             error
}

func (e *PartialDeleteError) Error() string {
	kept := "original"
	if !e.PreviewRemoved {
		kept = "preview"
	}
	return fmt.Sprintf("partial delete of %s: %s object survived: %v", e.PreviewPath, kept, e.Err)
}

func (e *PartialDeleteError) Unwrap() error {
	return e.Err
}

// Coordinator removes the (preview, original) pair of one gallery entry
// with modal-confirmed, two-phase execution. Both removals are attempted
// independently and best-effort; no transactional guarantee is pretended.
type Coordinator struct {
	store store.Store

	mu    sync.Mutex
	state State
}

// New creates an idle Coordinator.
func New(s store.Store) *Coordinator {
	return &Coordinator{store: s, state: StateIdle}
}

// State returns the current state machine position.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Request moves idle -> confirming.
func (c *Coordinator) Request() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle {
		return fmt.Errorf("deletion already in state %s", c.state)
	}
	c.state = StateConfirming
	return nil
}

// Cancel abandons a requested deletion, confirming -> idle.
func (c *Coordinator) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConfirming {
		return ErrNotConfirming
	}
	c.state = StateIdle
	return nil
}

// Confirm executes the confirmed deletion for the entry at previewPath:
// remove the preview object, then independently remove the original at the
// paired path. A failure on either never prevents attempting the other,
// and the outcome is reported only after both attempts complete.
//
// Exactly one removal failing returns *PartialDeleteError; both failing
// returns the joined transfer errors. Either way the surviving objects are
// still in the store and a later retry by path is safe.
func (c *Coordinator) Confirm(ctx context.Context, previewPath string) error {
	c.mu.Lock()
	if c.state != StateConfirming {
		c.mu.Unlock()
		return ErrNotConfirming
	}
	c.state = StateDeleting
	c.mu.Unlock()

	previewErr := c.store.Remove(ctx, previewPath)
	if previewErr != nil {
		logging.Warn("Failed to remove preview %s: %v", previewPath, previewErr)
	}

	originalPath := pathing.OriginalFromPreview(previewPath)
	originalErr := c.store.Remove(ctx, originalPath)
	if originalErr != nil {
		logging.Warn("Failed to remove original %s: %v", originalPath, originalErr)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case previewErr == nil && originalErr == nil:
		c.state = StateDone
		metrics.DeletesTotal.WithLabelValues("done").Inc()
		return nil
	case previewErr != nil && originalErr != nil:
		c.state = StatePartialError
		metrics.DeletesTotal.WithLabelValues("error").Inc()
		return errors.Join(previewErr, originalErr)
	default:
		c.state = StatePartialError
		metrics.DeletesTotal.WithLabelValues("partial").Inc()
		err := previewErr
		if err == nil {
			err = originalErr
		}
		return &PartialDeleteError{
			PreviewPath:     previewPath,
			PreviewRemoved:  previewErr == nil,
			OriginalRemoved: originalErr == nil,
			Err:             err,
		}
	}
}

// Reset returns a terminal coordinator to idle so the next deletion can be
// requested.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateDone || c.state == StatePartialError {
		c.state = StateIdle
	}
}
