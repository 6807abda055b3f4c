//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	Init("none")
}

func TestIsPrefix(t *testing.T) {
	tests := []struct {
		style    string
		expected bool
	}{
		{"none", false},
		{"nerd", true},
		{"unicode", true},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := IsPrefix(); got != tt.expected {
				t.Errorf("IsPrefix() = %v, want %v", got, tt.expected)
			}
		})
	}

	Init("none")
}

func TestFormatDir(t *testing.T) {
	tests := []struct {
		style    string
		name     string
		expected string
	}{
		{"none", "photos", "photos/"},
		{"nerd", "photos", "\uf07b photos"},
		{"unicode", "photos", "\U0001f4c1 photos"},
		{"none", "", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.style+"_"+tt.name, func(t *testing.T) {
			Init(tt.style)
			if got := FormatDir(tt.name); got != tt.expected {
				t.Errorf("FormatDir(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}

	Init("none")
}

func TestFormatFile(t *testing.T) {
	tests := []struct {
		style    string
		name     string
		expected string
	}{
		{"none", "notes.md", "notes.md"},
		{"nerd", "notes.md", "\uf15b notes.md"},
		{"unicode", "notes.md", "\U0001f4c4 notes.md"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := FormatFile(tt.name); got != tt.expected {
				t.Errorf("FormatFile(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}

	Init("none")
}

func TestFormatLink(t *testing.T) {
	tests := []struct {
		style    string
		name     string
		expected string
	}{
		{"none", "latest", "latest@"},
		{"nerd", "latest", "\uf0c1 latest"},
		{"unicode", "latest", "\U0001f517 latest"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := FormatLink(tt.name); got != tt.expected {
				t.Errorf("FormatLink(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}

	Init("none")
}
