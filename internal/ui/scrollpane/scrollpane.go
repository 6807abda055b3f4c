// Package scrollpane is a scrollable list of rows that hosts pull-to-refresh
// controllers on its top and bottom edges.
//
// The pane measures everything in rows. Its offset follows the usual
// scroll-view convention: the first content row sits at the top when the
// offset is 0, negative offsets reveal space above the content and the
// resting offset is minus the top inset.
package scrollpane

import (
	"log/slog"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pullrefresh/internal/refresh"
	"github.com/llehouerou/pullrefresh/internal/ui/render"
)

// wheelDelta is how many rows one wheel notch scrolls.
const wheelDelta = 3

// pullOvershoot is how far past the trigger height a scripted pull goes.
const pullOvershoot = 1.25

// Indicator draws the rows revealed by a pull on one edge.
type Indicator interface {
	refresh.Presenter
	View(width, rows int) string
}

// Options configures a pane.
type Options struct {
	TriggerHeight float64   // rows; <= 0 uses refresh.DefaultTriggerHeight
	Resistance    float64   // overscroll damping in (0, 1]; other values mean 1
	Header        Indicator // top edge presenter
	Footer        Indicator // bottom edge presenter; nil disables pull-up
	Logger        *slog.Logger
}

// insetState is shared between the pane and the controllers' containers so
// copies of the Model keep seeing the same reservations.
type insetState struct {
	base   refresh.Insets // the host's own insets
	top    float64        // reserved by the header controller
	bottom float64        // reserved by the footer controller
}

func (s *insetState) effective() refresh.Insets {
	return refresh.Insets{Top: s.base.Top + s.top, Bottom: s.base.Bottom + s.bottom}
}

// edgeContainer turns the full insets a controller asks for into a
// reservation on that controller's own edge.
type edgeContainer struct {
	edge  refresh.Edge
	state *insetState
}

func (c edgeContainer) SetInsets(in refresh.Insets) {
	if c.edge == refresh.EdgeBottom {
		c.state.bottom = math.Max(in.Bottom-c.state.base.Bottom, 0)
		return
	}
	c.state.top = math.Max(in.Top-c.state.base.Top, 0)
}

type dragState struct {
	active      bool
	startY      int
	startOffset float64
}

// Model is a scrollable pane of rows. Copies share the edge controllers and
// their inset reservations.
type Model struct {
	lines         []string
	width, height int
	offset        float64
	resistance    float64
	insets        *insetState
	drag          dragState

	header, footer         *refresh.Controller
	headerView, footerView Indicator
}

// New creates an empty pane.
func New(opts Options) Model {
	resistance := opts.Resistance
	if resistance <= 0 || resistance > 1 {
		resistance = 1
	}
	m := Model{
		resistance: resistance,
		insets:     &insetState{},
		headerView: opts.Header,
		footerView: opts.Footer,
	}
	m.header = m.newController(refresh.EdgeTop, opts.Header, opts)
	if opts.Footer != nil {
		m.footer = m.newController(refresh.EdgeBottom, opts.Footer, opts)
	}
	return m
}

func (m Model) newController(edge refresh.Edge, view Indicator, opts Options) *refresh.Controller {
	copts := []refresh.Option{
		refresh.WithEdge(edge),
		refresh.WithTriggerHeight(opts.TriggerHeight),
		refresh.WithContainer(edgeContainer{edge: edge, state: m.insets}),
		refresh.WithLogger(opts.Logger),
		refresh.WithGeometry(0, 0, refresh.Insets{}),
	}
	if view != nil {
		copts = append(copts, refresh.WithPresenter(view))
	}
	return refresh.New(copts...)
}

// Header returns the top edge controller.
func (m Model) Header() *refresh.Controller { return m.header }

// Footer returns the bottom edge controller, or nil when disabled.
func (m Model) Footer() *refresh.Controller { return m.footer }

// Controller returns the controller for edge, or nil.
func (m Model) Controller(edge refresh.Edge) *refresh.Controller {
	if edge == refresh.EdgeBottom {
		return m.footer
	}
	return m.header
}

// OnRefresh registers the refresh handler of an edge.
func (m Model) OnRefresh(edge refresh.Edge, fn func()) {
	if c := m.Controller(edge); c != nil {
		c.SetRefreshHandler(fn)
	}
}

// Offset returns the current scroll offset in rows.
func (m Model) Offset() float64 { return m.offset }

// Insets returns the insets in effect, reservations included.
func (m Model) Insets() refresh.Insets { return m.insets.effective() }

// Lines returns the content rows.
func (m Model) Lines() []string { return m.lines }

// Dragging reports whether a mouse drag is in progress.
func (m Model) Dragging() bool { return m.drag.active }

// SetSize sets the visible area.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = max(width, 0), max(height, 0)
	for _, c := range m.controllers() {
		c.OnViewportSizeChanged(float64(m.height))
	}
	m.settle()
}

// SetLines replaces the content rows.
func (m *Model) SetLines(lines []string) {
	m.lines = lines
	for _, c := range m.controllers() {
		c.OnContentSizeChanged(float64(len(lines)))
	}
	m.settle()
}

// SetHostInsets changes the pane's own insets, for example to leave room
// for an overlay. Refresh reservations stay on top of them.
func (m *Model) SetHostInsets(in refresh.Insets) {
	m.insets.base = in
	for _, c := range m.controllers() {
		c.OnHostInsetChanged(in.Top, in.Bottom)
	}
	m.settle()
}

// EndRefreshing finishes the refresh running on edge and scrolls the
// reserved rows away.
func (m *Model) EndRefreshing(edge refresh.Edge) {
	if c := m.Controller(edge); c != nil {
		c.EndRefreshing()
	}
	m.settle()
}

// ScrollBy moves the content by delta rows within the resting bounds.
func (m *Model) ScrollBy(delta float64) {
	if m.drag.active {
		return
	}
	m.setOffset(m.clamp(m.offset + delta))
}

// ScrollTop scrolls to the resting top.
func (m *Model) ScrollTop() {
	m.ScrollBy(math.Inf(-1))
}

// ScrollBottom scrolls to the resting bottom.
func (m *Model) ScrollBottom() {
	m.ScrollBy(math.Inf(1))
}

// Pull performs a complete drag on edge, far enough to trigger a refresh,
// and releases it. It does nothing while a drag is in progress or the edge
// is already refreshing.
func (m *Model) Pull(edge refresh.Edge) {
	c := m.Controller(edge)
	if c == nil || m.drag.active || c.State() == refresh.StateRefreshing {
		return
	}

	start, dir := m.minOffset(), -1.0
	if edge == refresh.EdgeBottom {
		start, dir = m.maxOffset(), 1.0
	}
	distance := c.TriggerHeight() * pullOvershoot

	m.setOffset(start)
	m.setPhase(refresh.PhaseBegan)
	for d := 1.0; d < distance; d++ {
		m.setPhase(refresh.PhaseChanged)
		m.setOffset(start + dir*d)
	}
	m.setPhase(refresh.PhaseChanged)
	m.setOffset(start + dir*distance)
	m.setPhase(refresh.PhaseEnded)
	m.settle()
}

// Update handles mouse input. Keys are left to the owner, which maps them
// to ScrollBy and Pull.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return m, nil
	}

	switch {
	case mouse.Button == tea.MouseButtonWheelUp:
		m.ScrollBy(-wheelDelta)
	case mouse.Button == tea.MouseButtonWheelDown:
		m.ScrollBy(wheelDelta)
	case mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft:
		m.beginDrag(mouse.Y)
	case mouse.Action == tea.MouseActionMotion && mouse.Button == tea.MouseButtonLeft:
		m.dragTo(mouse.Y)
	case mouse.Action == tea.MouseActionRelease:
		m.endDrag()
	}
	return m, nil
}

func (m *Model) beginDrag(y int) {
	if m.drag.active {
		return
	}
	m.drag = dragState{active: true, startY: y, startOffset: m.offset}
	m.setPhase(refresh.PhaseBegan)
}

// dragTo moves the content with the pointer. Pointer down means content
// down, which lowers the offset.
func (m *Model) dragTo(y int) {
	if !m.drag.active {
		return
	}
	raw := m.drag.startOffset + float64(m.drag.startY-y)
	m.setPhase(refresh.PhaseChanged)
	m.setOffset(m.damp(raw))
}

func (m *Model) endDrag() {
	if !m.drag.active {
		return
	}
	m.drag = dragState{}
	m.setPhase(refresh.PhaseEnded)
	m.settle()
}

// damp applies overscroll resistance past the resting bounds.
func (m Model) damp(raw float64) float64 {
	lo, hi := m.minOffset(), m.maxOffset()
	switch {
	case raw < lo:
		return lo - (lo-raw)*m.resistance
	case raw > hi:
		return hi + (raw-hi)*m.resistance
	}
	return raw
}

func (m Model) minOffset() float64 {
	return -m.insets.effective().Top
}

func (m Model) maxOffset() float64 {
	in := m.insets.effective()
	return math.Max(float64(len(m.lines))+in.Bottom-float64(m.height), -in.Top)
}

func (m Model) clamp(o float64) float64 {
	return math.Min(math.Max(o, m.minOffset()), m.maxOffset())
}

// settle brings the offset back within the resting bounds, unless the
// pointer still holds the content.
func (m *Model) settle() {
	if m.drag.active {
		return
	}
	if o := m.clamp(m.offset); o != m.offset {
		m.setOffset(o)
	}
}

func (m *Model) setOffset(o float64) {
	m.offset = o
	for _, c := range m.controllers() {
		c.OnOffsetChanged(o)
	}
}

func (m *Model) setPhase(p refresh.Phase) {
	for _, c := range m.controllers() {
		c.OnDragPhaseChanged(p)
	}
}

func (m Model) controllers() []*refresh.Controller {
	if m.footer == nil {
		return []*refresh.Controller{m.header}
	}
	return []*refresh.Controller{m.header, m.footer}
}

// View renders exactly height rows.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	rows := make([]string, 0, m.height)
	off := int(math.Round(m.offset))

	if off < 0 {
		n := min(-off, m.height)
		rows = append(rows, m.indicatorRows(m.headerView, n)...)
	}

	for i := max(off, 0); i < len(m.lines) && len(rows) < m.height; i++ {
		rows = append(rows, render.Truncate(m.lines[i], m.width))
	}

	if remaining := m.height - len(rows); remaining > 0 && m.footerActive() {
		rows = append(rows, m.indicatorRows(m.footerView, remaining)...)
	}
	for len(rows) < m.height {
		rows = append(rows, render.Blank(m.width))
	}
	return strings.Join(rows, "\n")
}

// footerActive reports whether the footer has something to show below the
// content.
func (m Model) footerActive() bool {
	if m.footer == nil || m.footerView == nil {
		return false
	}
	return m.footer.State() != refresh.StateIdle || m.footer.Percent() > 0
}

func (m Model) indicatorRows(view Indicator, n int) []string {
	if view == nil {
		out := make([]string, n)
		for i := range out {
			out[i] = render.Blank(m.width)
		}
		return out
	}
	return strings.Split(view.View(m.width, n), "\n")
}
