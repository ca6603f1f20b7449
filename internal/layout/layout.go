package layout

import "math"

// Gap is the fixed inter-item gap in pixels.
const Gap = 12

// Breakpoints for the column-count step function, in container pixels.
const (
	breakpointSmall  = 420
	breakpointMedium = 760
	breakpointLarge  = 1100
)

// Columns returns the column count for a container width: 1 column below
// 420px, then 2, 3 and 4 at the 420/760/1100 breakpoints.
func Columns(containerWidth int) int {
	switch {
	case containerWidth < breakpointSmall:
		return 1
	case containerWidth < breakpointMedium:
		return 2
	case containerWidth < breakpointLarge:
		return 3
	default:
		return 4
	}
}

// rowUnit is the masonry row height in pixels per breakpoint. It shrinks
// as columns narrow so visual density stays roughly constant.
func rowUnit(columns int) int {
	switch columns {
	case 1:
		return 10
	case 2:
		return 9
	case 3:
		return 8
	default:
		return 8
	}
}

// SpanFor computes the masonry row span for one tile from its natural
// aspect ratio (width/height) and the container width. The span is the
// tile's rendered height in row units, never less than 1.
func SpanFor(aspectRatio float64, containerWidth int) int {
	if aspectRatio <= 0 {
		return 1
	}

	cols := Columns(containerWidth)
	columnWidth := float64(containerWidth-Gap*(cols-1)) / float64(cols)
	if columnWidth < 1 {
		columnWidth = 1
	}

	span := int(math.Ceil(columnWidth / aspectRatio / float64(rowUnit(cols))))
	if span < 1 {
		span = 1
	}
	return span
}

// Layout computes the row span for every visible tile. A tile whose
// natural dimensions are not yet known (aspect <= 0, asset still decoding)
// yields 0 and is recomputed once its dimensions become available. Call
// again with the full set whenever the container resizes or the item set
// changes.
func Layout(aspectRatios []float64, containerWidth int) []int {
	spans := make([]int, len(aspectRatios))
	for i, ar := range aspectRatios {
		if ar <= 0 {
			continue
		}
		spans[i] = SpanFor(ar, containerWidth)
	}
	return spans
}
