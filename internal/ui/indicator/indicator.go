// Package indicator renders the header and footer rows that follow a
// refresh controller: a status line and a pull progress bar.
package indicator

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/pullrefresh/internal/refresh"
	"github.com/llehouerou/pullrefresh/internal/ui/render"
	"github.com/llehouerou/pullrefresh/internal/ui/styles"
)

// maxBarWidth caps the progress bar on wide terminals.
const maxBarWidth = 24

// Model is a refresh.Presenter for one edge of a scroll pane. It is used
// through a pointer since the controller mutates it.
type Model struct {
	edge        refresh.Edge
	state       refresh.State
	percent     float64
	spinner     spinner.Model
	lastUpdated time.Time
	exhausted   bool
	now         func() time.Time
}

var _ refresh.Presenter = (*Model)(nil)

// New creates an idle indicator for the given edge.
func New(edge refresh.Edge) *Model {
	return &Model{
		edge:  edge,
		state: refresh.StateIdle,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.T().Primary)),
		),
		now: time.Now,
	}
}

// OffsetChange records the latest pull percent.
func (m *Model) OffsetChange(percent float64) {
	m.percent = percent
}

// StateChange records a state transition.
func (m *Model) StateChange(state refresh.State, percent float64) {
	m.state = state
	m.percent = percent
}

// State returns the last state reported by the controller.
func (m *Model) State() refresh.State { return m.state }

// Percent returns the last percent reported by the controller.
func (m *Model) Percent() float64 { return m.percent }

// SetLastUpdated sets the time shown next to the header status.
func (m *Model) SetLastUpdated(t time.Time) {
	m.lastUpdated = t
}

// SetExhausted marks a footer as having nothing left to load.
func (m *Model) SetExhausted(exhausted bool) {
	m.exhausted = exhausted
}

// Tick starts the spinner animation. Run it when a refresh begins.
func (m *Model) Tick() tea.Msg {
	return m.spinner.Tick()
}

// Update advances the spinner while refreshing. Ticks arriving in any other
// state are dropped, which stops the animation loop.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok || m.state != refresh.StateRefreshing {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

// View renders rows lines of width cells. The status line sits next to the
// content: at the bottom of a header, at the top of a footer.
func (m *Model) View(width, rows int) string {
	if rows <= 0 || width <= 0 {
		return ""
	}

	block := []string{render.Center(m.status(), width)}
	if rows > 1 {
		block = append(block, render.Center(m.bar(width), width))
	}

	lines := make([]string, 0, rows)
	pad := rows - len(block)
	if m.edge == refresh.EdgeBottom {
		for i := len(block) - 1; i >= 0; i-- {
			lines = append(lines, block[i])
		}
	}
	for range pad {
		lines = append(lines, render.Blank(width))
	}
	if m.edge == refresh.EdgeTop {
		lines = append(lines, block...)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) status() string {
	s := styles.T().S()
	top := m.edge == refresh.EdgeTop

	switch m.state {
	case refresh.StateRefreshing:
		label := "Loading more…"
		if top {
			label = "Refreshing…"
		}
		return m.spinner.View() + " " + s.Base.Render(label)
	case refresh.StatePulling:
		if top {
			return s.Accent.Render("↑ Release to refresh")
		}
		return s.Accent.Render("↓ Release to load more")
	}

	if !top {
		if m.exhausted {
			return s.Subtle.Render("No more entries")
		}
		return s.Muted.Render("↑ Pull up to load more")
	}
	status := s.Muted.Render("↓ Pull to refresh")
	if !m.lastUpdated.IsZero() {
		status += s.Subtle.Render(" · updated " + humanize.RelTime(m.lastUpdated, m.now(), "ago", "from now"))
	}
	return status
}

// bar draws the pull progress. Nothing is drawn while refreshing.
func (m *Model) bar(width int) string {
	if m.state == refresh.StateRefreshing {
		return ""
	}
	t := styles.T()
	bw := min(width, maxBarWidth)
	progress := math.Min(math.Max(m.percent, 0), 1)
	filled := int(math.Round(progress * float64(bw)))

	head := styles.ApplyGradient(strings.Repeat("━", filled), t.Primary, styles.GradientAt(progress, t.Primary, t.Secondary))
	return head + t.S().Subtle.Render(strings.Repeat("─", bw-filled))
}
