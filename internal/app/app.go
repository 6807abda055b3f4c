// internal/app/app.go
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pullrefresh/internal/config"
	"github.com/llehouerou/pullrefresh/internal/errmsg"
	"github.com/llehouerou/pullrefresh/internal/feed"
	"github.com/llehouerou/pullrefresh/internal/keymap"
	"github.com/llehouerou/pullrefresh/internal/refresh"
	"github.com/llehouerou/pullrefresh/internal/state"
	"github.com/llehouerou/pullrefresh/internal/ui/indicator"
	"github.com/llehouerou/pullrefresh/internal/ui/scrollpane"
)

// scanTimeout bounds a single folder scan.
const scanTimeout = 10 * time.Second

// Model is the root application model containing all state.
type Model struct {
	Pane     scrollpane.Model
	Header   *indicator.Model
	Footer   *indicator.Model // nil when pull-up is disabled
	StateMgr state.Interface
	Keys     *keymap.Resolver
	Logger   *slog.Logger

	Folder   string
	PageSize int
	Limit    int // entries requested by the last successful scan
	Page     feed.Page

	ErrorMsg string
	ShowHelp bool
	Width    int
	Height   int

	// pending collects the edges whose controllers fired during the
	// current Update. Shared across copies of the model.
	pending *edgeQueue
	// seq tags in-flight scans per edge so cancelled ones can be dropped.
	seq     [2]int
	timeout time.Duration
	now     func() time.Time
}

type edgeQueue struct {
	edges []refresh.Edge
}

func (q *edgeQueue) push(e refresh.Edge) {
	q.edges = append(q.edges, e)
}

func (q *edgeQueue) take() []refresh.Edge {
	edges := q.edges
	q.edges = nil
	return edges
}

// New creates the application model from configuration.
func New(cfg *config.Config, stateMgr state.Interface, logger *slog.Logger) (Model, error) {
	folder, err := cfg.GetFolder()
	if err != nil {
		return Model{}, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	header := indicator.New(refresh.EdgeTop)
	opts := scrollpane.Options{
		TriggerHeight: cfg.GetTriggerHeight(),
		Resistance:    cfg.GetResistance(),
		Header:        header,
		Logger:        logger,
	}
	var footer *indicator.Model
	if cfg.FooterEnabled() {
		footer = indicator.New(refresh.EdgeBottom)
		opts.Footer = footer
	}

	m := Model{
		Pane:     scrollpane.New(opts),
		Header:   header,
		Footer:   footer,
		StateMgr: stateMgr,
		Keys:     keymap.Default(),
		Logger:   logger,
		Folder:   folder,
		PageSize: cfg.GetPageSize(),
		Limit:    cfg.GetPageSize(),
		pending:  &edgeQueue{},
		timeout:  scanTimeout,
		now:      time.Now,
	}

	pending := m.pending
	m.Pane.OnRefresh(refresh.EdgeTop, func() { pending.push(refresh.EdgeTop) })
	m.Pane.OnRefresh(refresh.EdgeBottom, func() { pending.push(refresh.EdgeBottom) })

	last, err := stateMgr.LastRefresh(refresh.EdgeTop.String())
	switch {
	case err != nil:
		m.ErrorMsg = errmsg.Format(errmsg.OpHistoryLoad, err)
	case last != nil:
		header.SetLastUpdated(last.FinishedAt)
	}

	return m, nil
}

// Init implements tea.Model. The first page is loaded without going
// through a controller, so nothing is recorded for it.
func (m Model) Init() tea.Cmd {
	return m.scanCmd(scanRequest{
		edge:    refresh.EdgeTop,
		limit:   m.Limit,
		seq:     m.seq[refresh.EdgeTop],
		initial: true,
	})
}

// indicator returns the presenter drawing edge, or nil.
func (m Model) indicator(edge refresh.Edge) *indicator.Model {
	if edge == refresh.EdgeBottom {
		return m.Footer
	}
	return m.Header
}

// paneHeight is the height left for the pane below the help line and
// above the status bar.
func (m Model) paneHeight() int {
	h := m.Height - statusBarHeight
	if m.ShowHelp {
		h -= helpHeight
	}
	return max(h, 0)
}
