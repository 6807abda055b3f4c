package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Folder string
	File   string
	Link   string
}

var (
	nerdIcons = Icons{
		Folder: "\uf07b ", // nf-fa-folder
		File:   "\uf15b ", // nf-fa-file
		Link:   "\uf0c1 ", // nf-fa-link
	}

	unicodeIcons = Icons{
		Folder: "📁 ",
		File:   "📄 ",
		Link:   "🔗 ",
	}

	noneIcons = Icons{
		Folder: "/",
		File:   "",
		Link:   "@",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// IsPrefix returns true if icons are prepended to names.
// For "none" style, markers are suffixes instead.
func IsPrefix() bool {
	return current != noneIcons
}

// FormatDir formats a directory name with the appropriate icon.
func FormatDir(name string) string {
	if !IsPrefix() {
		return name + current.Folder
	}
	return current.Folder + name
}

// FormatFile formats a regular file name with the appropriate icon.
func FormatFile(name string) string {
	return current.File + name
}

// FormatLink formats a symlink name with the appropriate icon.
func FormatLink(name string) string {
	if !IsPrefix() {
		return name + current.Link
	}
	return current.Link + name
}
