package refresh

import "math"

// DefaultTriggerHeight is the pull distance that equals 100%.
const DefaultTriggerHeight = 44.0

const insetEpsilon = 1e-9

// Insets are the extra space reserved above and below the scrollable content.
type Insets struct {
	Top    float64
	Bottom float64
}

// Equal compares two insets with a small tolerance.
func (i Insets) Equal(o Insets) bool {
	return math.Abs(i.Top-o.Top) < insetEpsilon && math.Abs(i.Bottom-o.Bottom) < insetEpsilon
}

// Add grows the inset on the given edge by h.
func (i Insets) Add(edge Edge, h float64) Insets {
	if edge == EdgeBottom {
		i.Bottom += h
	} else {
		i.Top += h
	}
	return i
}

// restingOffset is the offset the container reports when it sits still at
// the controller's edge with the given insets applied.
func restingOffset(edge Edge, in Insets, contentHeight, viewportHeight float64) float64 {
	if edge == EdgeBottom {
		return math.Max(contentHeight+in.Bottom-viewportHeight, -in.Top)
	}
	return -in.Top
}

// pullPercent converts an offset into a ratio of the trigger height. Pulling
// away from the content is positive for both edges.
func pullPercent(edge Edge, baseOffsetY, offsetY, triggerHeight float64) float64 {
	if edge == EdgeBottom {
		return (offsetY - baseOffsetY) / triggerHeight
	}
	return (baseOffsetY - offsetY) / triggerHeight
}
