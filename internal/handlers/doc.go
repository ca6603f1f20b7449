// Package handlers exposes the gallery core over HTTP.
//
// The handlers are a thin shell: they translate user intents (upload a
// selection, page the gallery, create or enter a folder, open an entry,
// delete an entry) into calls on the core packages and report outcomes as
// JSON. Caller identity arrives as an X-User-ID header from the identity
// collaborator fronting the service; no authentication happens here.
package handlers
