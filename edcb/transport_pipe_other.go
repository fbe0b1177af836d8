//go:build !windows

package edcb

import (
	"context"
	"fmt"
	"net"
	"runtime"
	"time"
)

// Named-pipe transport is Windows-only (EpgTimerSrv itself only runs
// there). On other platforms every pipe-mode call fails fast rather than
// retrying against a transport that can never succeed.

func dialPipeContext(ctx context.Context, name string, timeout time.Duration) (net.Conn, error) {
	return nil, fmt.Errorf("edcb: named pipe transport is not available on %s", runtime.GOOS)
}

func isPipeNotFound(err error) bool {
	return true
}

func pipeExistsPlatform(name string) bool {
	return false
}
