package testutil

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitLines_DropsTrailingBlankLines(t *testing.T) {
	got := SplitLines("a\n\n\x1b[31mb\x1b[0m\n  \n")
	want := []string{"a", "", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("SplitLines() = %q, want %q", got, want)
	}
}

func TestFindLine(t *testing.T) {
	out := "first\nsecond \x1b[1mmatch\x1b[0m\nthird"

	if got := FindLine(out, "second match"); got != 1 {
		t.Errorf("FindLine(second match) = %d, want 1", got)
	}
	if got := FindLine(out, "missing"); got != -1 {
		t.Errorf("FindLine(missing) = %d, want -1", got)
	}
	if !ContainsLine(out, "third") {
		t.Error("ContainsLine(third) = false, want true")
	}
}

func TestKey(t *testing.T) {
	for _, k := range []string{"j", "R", "ctrl+d", "enter", "up", "esc"} {
		if got := Key(k).String(); got != k {
			t.Errorf("Key(%q).String() = %q", k, got)
		}
	}
}

func TestCollect_FlattensBatches(t *testing.T) {
	type ping struct{ n int }
	cmd := tea.Batch(
		func() tea.Msg { return ping{1} },
		tea.Batch(
			func() tea.Msg { return ping{2} },
			func() tea.Msg { return ping{3} },
		),
		nil,
	)

	seen := map[int]bool{}
	msgs := Collect(cmd)
	for _, msg := range msgs {
		p, ok := msg.(ping)
		if !ok {
			t.Fatalf("unexpected message %T", msg)
		}
		seen[p.n] = true
	}
	if len(msgs) != 3 || !seen[1] || !seen[2] || !seen[3] {
		t.Errorf("Collect() = %v, want pings 1, 2 and 3", msgs)
	}
	if got := Collect(nil); got != nil {
		t.Errorf("Collect(nil) = %v, want nil", got)
	}
}
