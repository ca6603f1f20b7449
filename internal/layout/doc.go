// Package layout computes the responsive masonry grid for gallery tiles.
//
// The container width picks a column count by breakpoint; each tile's
// aspect ratio then maps to a row span so heterogeneous media pack into a
// dense grid. The computation is pure: the presentation layer re-invokes
// it on every resize or item-set change.
package layout
