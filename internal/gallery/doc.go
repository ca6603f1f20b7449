// Package gallery lists stored previews as a paginated, folder-scoped
// gallery.
//
// A Session is bound to one (user, folder) scope: it threads the store's
// continuation cursor, guarantees monotonic paging, and lazily resolves
// original-object URLs with a per-path cache. Folder markers surface as
// folder entries; consumers route clicks on them to a scope change.
package gallery
