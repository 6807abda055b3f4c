//go:build windows

package logging

import "log/slog"

// CaptureStderr is a no-op on Windows.
func CaptureStderr(_ *slog.Logger) (stop func(), err error) {
	return func() {}, nil
}
