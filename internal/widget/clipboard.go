package widget

import (
	"context"

	"github.com/atotto/clipboard"
)

// Clipboard receives copied passwords.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
