//go:build windows

package edcb

import (
	"context"
	"errors"
	"net"
	"os"
	"time"

	"github.com/Microsoft/go-winio"
)

func pipePath(name string) string {
	return `\\.\pipe\` + name
}

// dialPipeContext opens the named pipe, honoring both ctx and a per-call
// timeout (the caller passes the transport's remaining deadline budget).
func dialPipeContext(ctx context.Context, name string, timeout time.Duration) (net.Conn, error) {
	dctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return winio.DialPipeContext(dctx, pipePath(name))
}

// isPipeNotFound reports a definitive "the pipe does not exist" error, as
// opposed to a transient busy condition worth retrying.
func isPipeNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

// pipeExistsPlatform probes pipe existence with an immediate, non-blocking
// dial attempt.
func pipeExistsPlatform(name string) bool {
	conn, err := winio.DialPipe(pipePath(name), durationPtr(0))
	if err != nil {
		return !isPipeNotFound(err)
	}
	conn.Close()
	return true
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
