package clipboard

import (
	"context"
	"time"

	"github.com/atotto/clipboard"

	"github.com/donkronk/clipstack/internal/errors"
)

// DefaultTimeout bounds a single clipboard exchange. Platform helpers
// (xclip, pbpaste, ...) can hang on a broken display connection.
const DefaultTimeout = 5 * time.Second

// Port is the clipboard access surface. Implementations must be safe for
// concurrent use.
type Port interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, content string) error
}

// System reads and writes the OS clipboard through the platform's native
// mechanism or helper binaries.
type System struct {
	timeout time.Duration
}

// NewSystem returns a system clipboard port. A non-positive timeout falls
// back to DefaultTimeout.
func NewSystem(timeout time.Duration) *System {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &System{timeout: timeout}
}

type readResult struct {
	text string
	err  error
}

// Read returns the current clipboard content.
func (s *System) Read(ctx context.Context) (string, error) {
	if clipboard.Unsupported {
		return "", errors.NewClipboardUnavailable("no clipboard mechanism on this platform")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ch := make(chan readResult, 1)
	go func() {
		text, err := clipboard.ReadAll()
		ch <- readResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", errors.NewClipboardUnavailable("clipboard read timed out")
	case r := <-ch:
		if r.err != nil {
			return "", errors.NewClipboardUnavailable(r.err.Error())
		}
		return r.text, nil
	}
}

// Write replaces the clipboard content.
func (s *System) Write(ctx context.Context, content string) error {
	if clipboard.Unsupported {
		return errors.NewClipboardUnavailable("no clipboard mechanism on this platform")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ch := make(chan error, 1)
	go func() {
		ch <- clipboard.WriteAll(content)
	}()

	select {
	case <-ctx.Done():
		return errors.NewClipboardUnavailable("clipboard write timed out")
	case err := <-ch:
		if err != nil {
			return errors.NewClipboardUnavailable(err.Error())
		}
		return nil
	}
}
