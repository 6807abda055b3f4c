// Package app contains the root bubbletea model of the pull-to-refresh
// folder viewer.
package app

import (
	"time"

	"github.com/llehouerou/pullrefresh/internal/feed"
	"github.com/llehouerou/pullrefresh/internal/refresh"
)

// LoadedMsg carries the result of a folder scan started by a refresh.
type LoadedMsg struct {
	Edge    refresh.Edge
	Limit   int
	Seq     int
	Initial bool // first load at startup, not tied to a pull
	Started time.Time
	Page    feed.Page
	Err     error
}
