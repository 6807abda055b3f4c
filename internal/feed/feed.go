// Package feed lists a directory newest-first. It is the data the demo
// application refreshes when a pull completes.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/pullrefresh/internal/icons"
	"github.com/llehouerou/pullrefresh/internal/ui/render"
)

// Entry is one directory entry.
type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
	IsDir   bool
	IsLink  bool
}

// Page is the result of one scan: the newest Limit entries of Dir.
type Page struct {
	Dir     string
	Entries []Entry
	Total   int
}

// HasMore reports whether the directory holds entries beyond this page.
func (p Page) HasMore() bool {
	return len(p.Entries) < p.Total
}

// Scan reads dir and returns its newest entries. A limit <= 0 returns all
// of them. Entries that vanish between listing and stat are skipped.
func Scan(ctx context.Context, dir string, limit int) (Page, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return Page{}, fmt.Errorf("read %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return Page{}, err
		}
		info, err := de.Info()
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Page{}, fmt.Errorf("stat %s: %w", de.Name(), err)
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			IsDir:   de.IsDir(),
			IsLink:  de.Type()&fs.ModeSymlink != 0,
		})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := b.ModTime.Compare(a.ModTime); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	page := Page{
		Dir:   dir,
		Total: len(entries),
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	page.Entries = entries
	return page, nil
}

// Line formats the entry as one row of width cells: name on the left, size
// and age on the right.
func (e Entry) Line(width int, now time.Time) string {
	name := render.Sanitize(e.Name)
	size := humanize.Bytes(uint64(max(e.Size, 0)))
	switch {
	case e.IsDir:
		name = icons.FormatDir(name)
		size = "dir"
	case e.IsLink:
		name = icons.FormatLink(name)
	default:
		name = icons.FormatFile(name)
	}
	age := humanize.RelTime(e.ModTime, now, "ago", "from now")
	return render.Row(" "+name, size+"  "+age+" ", width)
}

// Lines formats every entry of the page.
func (p Page) Lines(width int, now time.Time) []string {
	lines := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		lines[i] = e.Line(width, now)
	}
	return lines
}
