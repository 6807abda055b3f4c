// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"regexp"
	"strings"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI color codes so rendered output can be compared
// without style interference.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// SplitLines strips styling and splits output into lines, dropping trailing
// empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ContainsLine reports whether any line of the output contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) >= 0
}

// FindLine returns the index of the first line containing substr, or -1.
func FindLine(output, substr string) int {
	for i, line := range strings.Split(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}
