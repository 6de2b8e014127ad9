package gui

// ClipboardProvider abstracts system clipboard access.
// The opengl backend ships a GLFW implementation.
type ClipboardProvider interface {
	// GetText returns "" if the clipboard is empty or holds non-text data.
	GetText() string
	SetText(text string)
}

var clipboardProvider ClipboardProvider

// SetClipboardProvider sets the global clipboard provider.
// Call this during application initialization.
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

// ClipboardGetText returns "" when no provider is set.
func ClipboardGetText() string {
	if clipboardProvider != nil {
		return clipboardProvider.GetText()
	}
	return ""
}

// ClipboardSetText does nothing when no provider is set.
func ClipboardSetText(text string) {
	if clipboardProvider != nil {
		clipboardProvider.SetText(text)
	}
}
