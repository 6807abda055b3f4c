package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/pullrefresh/internal/db"
)

// historyLimit is how many refresh records are kept.
const historyLimit = 100

// Record describes one completed refresh.
type Record struct {
	Edge       string // "top" or "bottom"
	StartedAt  time.Time
	FinishedAt time.Time
	ItemCount  int
	Err        string // empty on success
}

// Duration returns how long the refresh took.
func (r Record) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// RecordRefresh stores r and prunes the history to the newest entries.
func (m *Manager) RecordRefresh(r Record) error {
	return db.WithTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO refresh_log (edge, started_at, finished_at, item_count, error)
			VALUES (?, ?, ?, ?, ?)
		`, r.Edge, r.StartedAt.UnixMilli(), r.FinishedAt.UnixMilli(), r.ItemCount, db.NullString(r.Err)); err != nil {
			return err
		}

		_, err := tx.Exec(`
			DELETE FROM refresh_log WHERE id NOT IN (
				SELECT id FROM refresh_log ORDER BY id DESC LIMIT ?
			)
		`, historyLimit)
		return err
	})
}

// LastRefresh returns the newest record for edge, or nil if there is none.
func (m *Manager) LastRefresh(edge string) (*Record, error) {
	row := m.db.QueryRow(`
		SELECT edge, started_at, finished_at, item_count, error
		FROM refresh_log WHERE edge = ?
		ORDER BY id DESC LIMIT 1
	`, edge)

	var r Record
	var started, finished int64
	var errText sql.NullString
	err := row.Scan(&r.Edge, &started, &finished, &r.ItemCount, &errText)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no history is valid on first run
	}
	if err != nil {
		return nil, err
	}

	r.StartedAt = time.UnixMilli(started)
	r.FinishedAt = time.UnixMilli(finished)
	r.Err = db.NullStringValue(errText)
	return &r, nil
}
