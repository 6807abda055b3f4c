// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Scrolling
	ActionScrollUp     Action = "scroll_up"
	ActionScrollDown   Action = "scroll_down"
	ActionHalfPageUp   Action = "half_page_up"
	ActionHalfPageDown Action = "half_page_down"
	ActionJumpStart    Action = "jump_start"
	ActionJumpEnd      Action = "jump_end"

	// Refresh actions
	ActionPullRefresh  Action = "pull_refresh"  // scripted pull on the header
	ActionLoadMore     Action = "load_more"     // scripted pull on the footer
	ActionEndRefreshes Action = "end_refreshes" // esc - abandon running refreshes
)
