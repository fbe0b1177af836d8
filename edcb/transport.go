package edcb

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"time"

	"golang.org/x/time/rate"
)

// remaining returns the budget left until deadline, clamped to >= 0.
func remaining(deadline time.Time) time.Duration {
	d := time.Until(deadline)
	if d < 0 {
		return 0
	}
	return d
}

// readHeader reads an 8-byte CtrlCmd response header and returns the
// declared payload size. ret != cmdSuccess is a protocol failure.
func readHeader(conn net.Conn, deadline time.Time) (int32, error) {
	var hdr [8]byte
	if err := conn.SetReadDeadline(deadline); err != nil {
		return 0, err
	}
	if _, err := io.ReadFull(conn, hdr[:]); err != nil {
		return 0, fmt.Errorf("edcb: read header: %w", err)
	}
	ret := int32(binary.LittleEndian.Uint32(hdr[0:4]))
	size := int32(binary.LittleEndian.Uint32(hdr[4:8]))
	if ret != cmdSuccess {
		return 0, fmt.Errorf("edcb: ret=%d", ret)
	}
	if size < 0 {
		return 0, ErrRead
	}
	return size, nil
}

func readPayload(conn net.Conn, deadline time.Time, size int32) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(conn, buf); err != nil {
		return nil, fmt.Errorf("edcb: read payload: %w", err)
	}
	return buf, nil
}

// sendAndReceiveTCP performs one request/response round trip over a fresh
// TCP connection. Connect, write and the two reads all share the single
// absolute deadline computed from timeout; each wait gets whatever budget
// remains (§4.4).
func sendAndReceiveTCP(ctx context.Context, host string, port int, timeout time.Duration, req []byte) ([]byte, error) {
	deadline := time.Now().Add(timeout)

	dialer := net.Dialer{Timeout: remaining(deadline)}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, fmt.Sprintf("%d", port)))
	if err != nil {
		return nil, fmt.Errorf("edcb: dial: %w", err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(deadline); err != nil {
		return nil, err
	}
	if _, err := conn.Write(req); err != nil {
		return nil, fmt.Errorf("edcb: write: %w", err)
	}

	size, err := readHeader(conn, deadline)
	if err != nil {
		return nil, err
	}
	return readPayload(conn, deadline, size)
}

// sendAndReceivePipe performs one request/response round trip over the
// named pipe transport, retrying at 10ms intervals while the pipe is
// transiently unavailable. A definitive "not found" exits immediately
// (§4.5): the server simply isn't running on this host.
func sendAndReceivePipe(ctx context.Context, pipeName string, timeout time.Duration, req []byte) ([]byte, error) {
	deadline := time.Now().Add(timeout)

	// Paces the busy-pipe retry loop at 10ms via a rate.Limiter rather than
	// a bare time.Sleep; drain the initial burst token so the first retry
	// (not the first attempt) is the one that actually waits.
	limiter := rate.NewLimiter(rate.Every(10*time.Millisecond), 1)
	limiter.Allow()

	var conn net.Conn
	for {
		var err error
		conn, err = dialPipeContext(ctx, pipeName, remaining(deadline))
		if err == nil {
			break
		}
		if isPipeNotFound(err) {
			return nil, fmt.Errorf("edcb: pipe not found: %w", err)
		}
		if remaining(deadline) == 0 {
			return nil, fmt.Errorf("edcb: pipe connect timed out: %w", err)
		}
		if werr := limiter.Wait(ctx); werr != nil {
			return nil, werr
		}
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(deadline); err != nil {
		return nil, err
	}
	if _, err := conn.Write(req); err != nil {
		return nil, fmt.Errorf("edcb: write: %w", err)
	}

	size, err := readHeader(conn, deadline)
	if err != nil {
		return nil, err
	}
	return readPayload(conn, deadline, size)
}
