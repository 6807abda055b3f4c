package refresh

// Presenter is the presentation layer a Controller drives. It only reacts to
// notifications; it never feeds anything back.
type Presenter interface {
	// OffsetChange fires on every percent recomputation.
	OffsetChange(percent float64)
	// StateChange fires on actual state transitions only.
	StateChange(state State, percent float64)
}

// PresenterFuncs adapts a pair of functions to Presenter. Either may be nil.
type PresenterFuncs struct {
	Offset func(percent float64)
	State  func(state State, percent float64)
}

func (f PresenterFuncs) OffsetChange(percent float64) {
	if f.Offset != nil {
		f.Offset(percent)
	}
}

func (f PresenterFuncs) StateChange(state State, percent float64) {
	if f.State != nil {
		f.State(state, percent)
	}
}

// Container receives the insets a Controller wants applied to its host.
type Container interface {
	SetInsets(in Insets)
}

type nopPresenter struct{}

func (nopPresenter) OffsetChange(float64)       {}
func (nopPresenter) StateChange(State, float64) {}
