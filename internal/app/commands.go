// internal/app/commands.go
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pullrefresh/internal/feed"
	"github.com/llehouerou/pullrefresh/internal/refresh"
)

type scanRequest struct {
	edge    refresh.Edge
	limit   int
	seq     int
	initial bool
}

// scanCmd returns a command that scans the folder and reports a LoadedMsg.
func (m Model) scanCmd(req scanRequest) tea.Cmd {
	dir, timeout, now := m.Folder, m.timeout, m.now
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		started := now()
		page, err := feed.Scan(ctx, dir, req.limit)
		return LoadedMsg{
			Edge:    req.edge,
			Limit:   req.limit,
			Seq:     req.seq,
			Initial: req.initial,
			Started: started,
			Page:    page,
			Err:     err,
		}
	}
}

// startRefreshes turns the edges whose controllers fired into scans. The
// header reloads the current window; the footer asks for one more page, or
// ends at once when the folder has nothing left.
func (m *Model) startRefreshes() tea.Cmd {
	edges := m.pending.take()
	if len(edges) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, 2*len(edges))
	for _, edge := range edges {
		if edge == refresh.EdgeBottom && !m.Page.HasMore() {
			m.Logger.Debug("nothing more to load", "total", m.Page.Total)
			m.Pane.EndRefreshing(edge)
			continue
		}
		limit := m.Limit
		if edge == refresh.EdgeBottom {
			limit += m.PageSize
		}
		m.seq[edge]++
		m.Logger.Info("refresh started", "edge", edge, "limit", limit, "folder", m.Folder)

		cmds = append(cmds, m.scanCmd(scanRequest{edge: edge, limit: limit, seq: m.seq[edge]}))
		if ind := m.indicator(edge); ind != nil {
			cmds = append(cmds, ind.Tick)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
