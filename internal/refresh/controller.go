package refresh

import (
	"log/slog"
	"math"
)

// Controller owns the refresh state and pull percent of one edge of one
// scrollable container.
//
// All methods must be called from a single goroutine. The controller never
// blocks and never fails: inputs that make no sense are ignored.
type Controller struct {
	edge          Edge
	triggerHeight float64
	presenter     Presenter
	container     Container
	log           *slog.Logger
	handler       func()

	state   State
	phase   Phase
	percent float64
	offsetY float64

	hasOffset   bool
	established bool
	fired       bool

	contentHeight  float64
	viewportHeight float64
	baseOffsetY    float64
	originInsets   Insets
	currentInsets  Insets
}

// Option configures a Controller.
type Option func(*Controller)

// WithTriggerHeight sets the pull distance that equals 100%. Non-positive
// values keep the default.
func WithTriggerHeight(h float64) Option {
	return func(c *Controller) {
		if h > 0 && !math.IsInf(h, 0) {
			c.triggerHeight = h
		}
	}
}

// WithEdge selects the edge the controller watches.
func WithEdge(e Edge) Option {
	return func(c *Controller) { c.edge = e }
}

// WithPresenter sets the presentation layer.
func WithPresenter(p Presenter) Option {
	return func(c *Controller) {
		if p != nil {
			c.presenter = p
		}
	}
}

// WithContainer sets where inset adjustments are pushed.
func WithContainer(ct Container) Option {
	return func(c *Controller) { c.container = ct }
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithGeometry establishes the initial geometry so offsets are accepted
// right away.
func WithGeometry(contentHeight, viewportHeight float64, in Insets) Option {
	return func(c *Controller) {
		c.contentHeight = contentHeight
		c.viewportHeight = viewportHeight
		c.originInsets = in
		c.currentInsets = in
		c.established = true
	}
}

// New creates an idle controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		edge:          EdgeTop,
		triggerHeight: DefaultTriggerHeight,
		presenter:     nopPresenter{},
		log:           slog.New(slog.DiscardHandler),
		state:         StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.captureBase()
	return c
}

// SetRefreshHandler registers the function invoked once per refresh episode.
// Passing nil clears it.
func (c *Controller) SetRefreshHandler(fn func()) {
	c.handler = fn
}

// State returns the current refresh state.
func (c *Controller) State() State { return c.state }

// Percent returns the last computed pull percent. It may be negative.
func (c *Controller) Percent() float64 { return c.percent }

// Phase returns the last drag phase reported by the host.
func (c *Controller) Phase() Phase { return c.phase }

// Edge returns the edge this controller watches.
func (c *Controller) Edge() Edge { return c.edge }

// TriggerHeight returns the pull distance that equals 100%.
func (c *Controller) TriggerHeight() float64 { return c.triggerHeight }

// BaseOffsetY returns the resting offset used as the zero reference.
func (c *Controller) BaseOffsetY() float64 { return c.baseOffsetY }

// OriginInsets returns the host's own insets.
func (c *Controller) OriginInsets() Insets { return c.originInsets }

// Insets returns the insets currently applied, including any reservation.
func (c *Controller) Insets() Insets { return c.currentInsets }

// OnOffsetChanged feeds the container's vertical scroll offset.
func (c *Controller) OnOffsetChanged(offsetY float64) {
	if !c.established || math.IsNaN(offsetY) || math.IsInf(offsetY, 0) {
		return
	}
	c.offsetY = offsetY
	c.hasOffset = true
	c.percent = pullPercent(c.edge, c.baseOffsetY, offsetY, c.triggerHeight)
	c.presenter.OffsetChange(c.percent)
	c.evaluate()
}

// OnDragPhaseChanged feeds the host's drag gesture phase. Releasing while
// pulling either starts a refresh or falls back to idle.
func (c *Controller) OnDragPhaseChanged(phase Phase) {
	c.phase = phase
	switch {
	case phase.Dragging():
		c.evaluate()
	case phase.Released() && c.state == StatePulling:
		if c.effectivePercent() >= 1 {
			c.beginRefreshing()
		} else {
			c.transition(StateIdle, c.percent)
		}
	}
}

// OnContentSizeChanged feeds the container's content height.
func (c *Controller) OnContentSizeChanged(height float64) {
	c.contentHeight = height
	c.established = true
	c.captureBase()
	c.recompute()
}

// OnViewportSizeChanged feeds the container's visible height. Only the
// bottom edge depends on it.
func (c *Controller) OnViewportSizeChanged(height float64) {
	c.viewportHeight = height
	c.captureBase()
	c.recompute()
}

// OnContentInsetChanged feeds the container's insets. Insets matching what
// the controller itself applied are ignored; anything else is the host's
// own change and becomes the new origin.
//
// Containers that never report the controller's adjustments back should
// call OnHostInsetChanged instead.
func (c *Controller) OnContentInsetChanged(top, bottom float64) {
	if (Insets{Top: top, Bottom: bottom}).Equal(c.currentInsets) {
		c.established = true
		return
	}
	c.OnHostInsetChanged(top, bottom)
}

// OnHostInsetChanged feeds insets the host set itself. They always become
// the new origin, even when they equal the insets currently applied.
func (c *Controller) OnHostInsetChanged(top, bottom float64) {
	in := Insets{Top: top, Bottom: bottom}
	c.established = true
	c.originInsets = in
	if c.state == StateRefreshing {
		c.applyInsets(in.Add(c.edge, c.triggerHeight))
	} else {
		c.currentInsets = in
	}
	c.captureBase()
	c.recompute()
}

// EndRefreshing returns a refreshing controller to idle and restores the
// host's insets. It does nothing in any other state.
func (c *Controller) EndRefreshing() {
	if c.state != StateRefreshing {
		return
	}
	c.fired = false
	c.applyInsets(c.originInsets)
	c.percent = 0
	c.transition(StateIdle, 0)
}

func (c *Controller) beginRefreshing() {
	c.applyInsets(c.originInsets.Add(c.edge, c.triggerHeight))
	c.transition(StateRefreshing, c.percent)
	c.executeRefreshCallback()
}

// executeRefreshCallback fires the handler at most once per refresh episode.
func (c *Controller) executeRefreshCallback() {
	if c.fired {
		return
	}
	c.fired = true
	if c.handler == nil {
		c.log.Debug("refresh started without handler", "edge", c.edge)
		return
	}
	c.handler()
}

// evaluate toggles idle and pulling while the drag is active.
func (c *Controller) evaluate() {
	if c.state == StateRefreshing || !c.phase.Dragging() || !c.hasOffset {
		return
	}
	p := c.effectivePercent()
	switch {
	case c.state == StateIdle && p >= 1:
		c.transition(StatePulling, c.percent)
	case c.state == StatePulling && p < 1:
		c.transition(StateIdle, c.percent)
	}
}

// recompute re-derives the percent after a geometry change. Nothing is
// emitted when the percent is unchanged.
func (c *Controller) recompute() {
	if !c.established || !c.hasOffset {
		return
	}
	p := pullPercent(c.edge, c.baseOffsetY, c.offsetY, c.triggerHeight)
	if p == c.percent {
		return
	}
	c.percent = p
	c.presenter.OffsetChange(p)
	c.evaluate()
}

func (c *Controller) captureBase() {
	c.baseOffsetY = restingOffset(c.edge, c.originInsets, c.contentHeight, c.viewportHeight)
}

func (c *Controller) applyInsets(in Insets) {
	c.currentInsets = in
	if c.container != nil {
		c.container.SetInsets(in)
	}
}

func (c *Controller) transition(to State, percent float64) {
	from := c.state
	if from == to {
		return
	}
	c.state = to
	c.log.Debug("refresh state changed",
		"edge", c.edge,
		"from", from,
		"to", to,
		"percent", percent,
	)
	c.presenter.StateChange(to, percent)
}

func (c *Controller) effectivePercent() float64 {
	return math.Max(c.percent, 0)
}
