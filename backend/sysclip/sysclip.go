// Package sysclip provides a gui.ClipboardProvider that talks to the OS
// clipboard directly (pbcopy, xclip/xsel, wl-clipboard or the Windows API),
// for hosts without a windowing library clipboard.
package sysclip

import (
	"github.com/atotto/clipboard"

	"github.com/go-theft-auto/dropdown/gui"
)

var _ gui.ClipboardProvider = Clipboard{}

// Clipboard is the system clipboard. The zero value is ready to use.
type Clipboard struct{}

// Supported reports whether a clipboard mechanism was found on this system.
func Supported() bool {
	return !clipboard.Unsupported
}

// GetText returns "" when the clipboard can't be read.
func (Clipboard) GetText() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		gui.Logger().Debug("clipboard read failed", "err", err)
		return ""
	}
	return text
}

// SetText drops the text when the clipboard can't be written.
func (Clipboard) SetText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		gui.Logger().Debug("clipboard write failed", "err", err)
	}
}
