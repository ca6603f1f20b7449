// Package folders emulates directories on top of the flat object
// namespace.
//
// A "folder" is nothing but a marker object inside the preview namespace
// whose name carries a reserved prefix; entering a folder only changes the
// prefix used by subsequent list and upload calls. This is a deliberate,
// documented convention over plain object storage, not a directory
// abstraction.
package folders
