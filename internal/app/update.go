// internal/app/update.go
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pullrefresh/internal/errmsg"
	"github.com/llehouerou/pullrefresh/internal/keymap"
	"github.com/llehouerou/pullrefresh/internal/refresh"
	"github.com/llehouerou/pullrefresh/internal/state"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.Pane, _ = m.Pane.Update(msg)
		return m, m.startRefreshes()

	case LoadedMsg:
		return m.handleLoaded(msg)

	case spinner.TickMsg:
		return m, m.updateSpinners(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Pane.SetSize(m.Width, m.paneHeight())
	m.Pane.SetLines(m.Page.Lines(m.Width, m.now()))
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	halfPage := float64(max(m.paneHeight()/2, 1))

	switch m.Keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		m.Pane.SetSize(m.Width, m.paneHeight())
	case keymap.ActionScrollUp:
		m.Pane.ScrollBy(-1)
	case keymap.ActionScrollDown:
		m.Pane.ScrollBy(1)
	case keymap.ActionHalfPageUp:
		m.Pane.ScrollBy(-halfPage)
	case keymap.ActionHalfPageDown:
		m.Pane.ScrollBy(halfPage)
	case keymap.ActionJumpStart:
		m.Pane.ScrollTop()
	case keymap.ActionJumpEnd:
		m.Pane.ScrollBottom()
	case keymap.ActionPullRefresh:
		m.Pane.Pull(refresh.EdgeTop)
	case keymap.ActionLoadMore:
		m.Pane.Pull(refresh.EdgeBottom)
	case keymap.ActionEndRefreshes:
		m.cancelRefreshes()
	}
	return m, m.startRefreshes()
}

// cancelRefreshes ends every running refresh. Their scans still complete
// but their results are dropped.
func (m *Model) cancelRefreshes() {
	for _, edge := range []refresh.Edge{refresh.EdgeTop, refresh.EdgeBottom} {
		c := m.Pane.Controller(edge)
		if c == nil || c.State() != refresh.StateRefreshing {
			continue
		}
		m.seq[edge]++
		m.Pane.EndRefreshing(edge)
		m.Logger.Info("refresh cancelled", "edge", edge)
	}
}

func (m Model) handleLoaded(msg LoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.seq[msg.Edge] {
		m.Logger.Debug("stale scan dropped", "edge", msg.Edge, "seq", msg.Seq)
		return m, nil
	}

	finished := m.now()
	if msg.Err != nil {
		op := errmsg.OpFeedScan
		if msg.Edge == refresh.EdgeBottom {
			op = errmsg.OpFeedLoadMore
		}
		m.ErrorMsg = errmsg.FormatWith(op, m.Folder, msg.Err)
		m.Logger.Warn("scan failed", "edge", msg.Edge, "err", msg.Err)
	} else {
		m.ErrorMsg = ""
		m.Page = msg.Page
		m.Limit = max(min(msg.Limit, msg.Page.Total), m.PageSize)
		m.Pane.SetLines(m.Page.Lines(m.Width, finished))
		if msg.Edge == refresh.EdgeTop {
			m.Header.SetLastUpdated(finished)
		}
		if m.Footer != nil {
			m.Footer.SetExhausted(!m.Page.HasMore())
		}
		m.Logger.Info("scan finished",
			"edge", msg.Edge,
			"entries", len(msg.Page.Entries),
			"total", msg.Page.Total,
			"took", finished.Sub(msg.Started),
		)
	}

	if !msg.Initial {
		m.record(msg, finished)
	}
	m.Pane.EndRefreshing(msg.Edge)
	return m, nil
}

// record stores a finished refresh in the history.
func (m *Model) record(msg LoadedMsg, finished time.Time) {
	r := state.Record{
		Edge:       msg.Edge.String(),
		StartedAt:  msg.Started,
		FinishedAt: finished,
		ItemCount:  len(msg.Page.Entries),
	}
	if msg.Err != nil {
		r.Err = msg.Err.Error()
	}
	if err := m.StateMgr.RecordRefresh(r); err != nil {
		m.Logger.Warn("record refresh", "err", err)
		if m.ErrorMsg == "" {
			m.ErrorMsg = errmsg.Format(errmsg.OpHistorySave, err)
		}
		return
	}
	m.Logger.Debug("refresh recorded", "edge", r.Edge, "duration", r.Duration(), "items", r.ItemCount)
}

func (m Model) updateSpinners(msg spinner.TickMsg) tea.Cmd {
	cmds := []tea.Cmd{m.Header.Update(msg)}
	if m.Footer != nil {
		cmds = append(cmds, m.Footer.Update(msg))
	}
	return tea.Batch(cmds...)
}
