package debug

import (
	"io"
	"log"
	"testing"
)

// TestLogTo configures debug to log to w for the duration of the test,
// restoring the previous settings when the test finishes.
func TestLogTo(t testing.TB, w io.Writer) {
	prevEnabled, prevLogger := opts.isEnabled, opts.logger

	opts.logger = log.New(w, "", 0)
	opts.isEnabled = true

	t.Cleanup(func() {
		opts.isEnabled, opts.logger = prevEnabled, prevLogger
	})
}
