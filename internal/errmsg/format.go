// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Startup
	OpConfigLoad Op = "load configuration"
	OpStateOpen  Op = "open refresh history"
	OpLogOpen    Op = "open log file"

	// Feed
	OpFeedScan     Op = "refresh folder"
	OpFeedLoadMore Op = "load more entries"

	// History
	OpHistorySave Op = "save refresh history"
	OpHistoryLoad Op = "load refresh history"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
