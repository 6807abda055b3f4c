//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFeedScan,
			err:      nil,
			expected: "",
		},
		{
			name:     "feed scan",
			op:       OpFeedScan,
			err:      errors.New("permission denied"),
			expected: "Failed to refresh folder: permission denied",
		},
		{
			name:     "history save",
			op:       OpHistorySave,
			err:      errors.New("database is locked"),
			expected: "Failed to save refresh history: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFeedScan,
			context:  "/srv/inbox",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpFeedLoadMore,
			context:  "/srv/inbox",
			err:      errors.New("no such file or directory"),
			expected: "Failed to load more entries '/srv/inbox': no such file or directory",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpConfigLoad,
			context:  "",
			err:      errors.New("bad toml"),
			expected: "Failed to load configuration: bad toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpConfigLoad, OpStateOpen, OpLogOpen,
		OpFeedScan, OpFeedLoadMore,
		OpHistorySave, OpHistoryLoad,
	}

	testErr := errors.New("test error")
	for _, op := range ops {
		if op == "" {
			t.Error("found empty Op constant")
		}
		msg := Format(op, testErr)
		if !strings.HasPrefix(msg, "Failed to ") {
			t.Errorf("Format(%q) = %q, want prefix 'Failed to '", op, msg)
		}
	}
}
