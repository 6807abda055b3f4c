//go:build !windows

package logging

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// CaptureStderr redirects file descriptor 2 into logger so stray writes
// from libraries can't corrupt the TUI. The returned stop restores the
// original descriptor and waits until every captured line was logged.
func CaptureStderr(logger *slog.Logger) (stop func(), err error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	fd := int(os.Stderr.Fd())
	orig, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				logger.Warn("stderr", "line", line)
			}
		}
	}()

	return func() {
		_ = unix.Dup2(orig, fd)
		_ = unix.Close(orig)
		// fd 2 no longer references the pipe, so closing w delivers EOF.
		w.Close()
		<-done
		r.Close()
	}, nil
}
