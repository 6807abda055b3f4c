// Package render provides text layout helpers for terminal rows.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters and invalid UTF-8 so file names can't
// break the terminal layout. Non-breaking spaces become plain spaces.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r == unicode.ReplacementChar, r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

// Truncate shortens a possibly styled string to maxWidth cells, ending with
// a single-cell ellipsis when something was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills a plain string with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Row lays out left and right content on one line of exactly width cells.
// The left side is truncated first when both don't fit.
func Row(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	if rightWidth >= width {
		return Truncate(right, width)
	}
	left = Truncate(left, width-rightWidth-1)
	gap := max(width-lipgloss.Width(left)-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Center places s in the middle of a line width cells wide.
func Center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, Truncate(s, width))
}

// Blank returns an empty line of width cells.
func Blank(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
