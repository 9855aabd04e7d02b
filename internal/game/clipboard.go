package game

import (
	"errors"

	"github.com/atotto/clipboard"
)

// errClipboardUnsupported is returned on platforms without a clipboard tool.
var errClipboardUnsupported = errors.New("clipboard unsupported on this system")

// setClipboardText copies text to the system clipboard.
func setClipboardText(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	if text == "" {
		text = " "
	}
	return clipboard.WriteAll(text)
}
