// internal/app/view.go
package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/pullrefresh/internal/keymap"
	"github.com/llehouerou/pullrefresh/internal/ui/render"
	"github.com/llehouerou/pullrefresh/internal/ui/styles"
)

const (
	statusBarHeight = 1
	helpHeight      = 1
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	parts := make([]string, 0, 3)
	if pane := m.Pane.View(); pane != "" {
		parts = append(parts, pane)
	}
	if m.ShowHelp {
		parts = append(parts, m.renderHelp())
	}
	parts = append(parts, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderStatusBar() string {
	s := styles.T().S()

	left := " " + render.Sanitize(filepath.Base(m.Folder))
	if m.Page.Total > 0 {
		left += fmt.Sprintf(" · %s of %s entries",
			humanize.Comma(int64(len(m.Page.Entries))),
			humanize.Comma(int64(m.Page.Total)))
	}

	right := "? help "
	if m.ErrorMsg != "" {
		right = s.Error.Render(m.ErrorMsg) + " "
	}

	return s.StatusBar.Render(render.Row(left, right, m.Width))
}

// helpContexts orders the help line, most useful first.
var helpContexts = []string{"refresh", "scroll", "global"}

func (m Model) renderHelp() string {
	items := make([]string, 0, len(keymap.Bindings))
	for _, ctx := range helpContexts {
		for _, b := range keymap.ByContext(ctx) {
			items = append(items, b.Keys[0]+" "+strings.ToLower(b.Description))
		}
	}
	line := " " + strings.Join(items, " · ")
	return styles.T().S().Muted.Render(render.Pad(render.Truncate(line, m.Width), m.Width))
}
