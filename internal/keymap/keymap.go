// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "scroll", "refresh"
}

// Bindings contains all key bindings for help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Scrolling
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", "scroll"},
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", "scroll"},
	{ActionHalfPageUp, []string{"ctrl+u", "pgup"}, "Half page up", "scroll"},
	{ActionHalfPageDown, []string{"ctrl+d", "pgdown"}, "Half page down", "scroll"},
	{ActionJumpStart, []string{"g", "home"}, "Jump to top", "scroll"},
	{ActionJumpEnd, []string{"G", "end"}, "Jump to bottom", "scroll"},

	// Refresh
	{ActionPullRefresh, []string{"r", "R"}, "Pull to refresh", "refresh"},
	{ActionLoadMore, []string{"L"}, "Load more", "refresh"},
	{ActionEndRefreshes, []string{"esc"}, "Cancel refresh", "refresh"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
