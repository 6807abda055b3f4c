// Package refresh implements the pull-to-refresh state machine that sits on
// top of a scrollable container.
//
// A Controller consumes four notification feeds from its host (scroll
// offset, drag phase, content size, edge insets) and derives from them a
// three-state lifecycle (idle, pulling, refreshing) plus a normalized pull
// percent. Presentation is left to a Presenter; fetching data is left to the
// refresh handler.
package refresh

// State is the refresh lifecycle state.
type State int

const (
	StateIdle State = iota + 1
	StatePulling
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePulling:
		return "pulling"
	case StateRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

// Phase mirrors the host gesture recognizer's drag phases. The numeric values
// follow the usual recognizer numbering so hosts can pass theirs through.
type Phase int

const (
	PhasePossible Phase = iota
	PhaseBegan
	PhaseChanged
	PhaseEnded
	PhaseCancelled
	PhaseFailed
)

// Dragging reports whether the finger (or pointer) is actively dragging.
func (p Phase) Dragging() bool {
	return p == PhaseBegan || p == PhaseChanged
}

// Released reports whether the drag just let go.
func (p Phase) Released() bool {
	return p == PhaseEnded || p == PhaseCancelled || p == PhaseFailed
}

func (p Phase) String() string {
	switch p {
	case PhasePossible:
		return "possible"
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Edge selects which end of the container a controller watches.
type Edge int

const (
	// EdgeTop is the header: pull the content down past its resting offset.
	EdgeTop Edge = iota
	// EdgeBottom is the footer: pull the content up past its end.
	EdgeBottom
)

func (e Edge) String() string {
	if e == EdgeBottom {
		return "bottom"
	}
	return "top"
}
