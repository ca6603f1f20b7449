// Package pathing derives object-store paths for uploaded media.
//
// The store is a flat namespace; all structure is encoded in the key:
//
//	uploads/users/{userId}/{folder?}/{previews|original}/{token}
//	token = {YYYYMMDD_HHMMSS}_{uuid}_{sanitizedName}
//
// Invariant: the preview and original paths of one logical file differ only
// in the previews/original segment. Everything that maps a preview back to
// its original (opening an entry, deleting a pair) relies on that single
// substitution and nothing else.
package pathing
