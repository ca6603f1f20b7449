// Package deleter removes the paired (preview, original) objects of a
// gallery entry.
//
// Deletion is two-phase and best-effort: each half of the pair is removed
// independently, a single failure surfaces as *PartialDeleteError rather
// than being swallowed, and no false atomicity is introduced. The state
// machine (idle -> confirming -> deleting -> done|partialError) backs the
// confirmation modal in the presentation layer.
package deleter
