package edcb

import (
	"context"
	"fmt"
	"net"
	"time"

	"golang.org/x/time/rate"
)

// viewerPipeMaxPort bounds the `SendTSTCP_<port>_<pid>` pipe-name search
// (§4.5 open question: "first success wins" is preserved as-is).
const viewerPipeMaxPort = 29

// RelayViewStream performs the stream-relay handshake (opcode 301): on
// success it hands back an open, already-connected socket the caller owns
// and should read viewer TS data from. It is TCP-only by protocol design —
// in pipe mode it returns ErrNoResult without any I/O.
//
// Unlike every other operation, this one is synchronous end to end: the
// transport timeout bounds the whole connect+write+read-header sequence,
// and the returned connection is not closed by this call.
func (c *Client) RelayViewStream(ctx context.Context, pid int32) (net.Conn, error) {
	_, host, port, timeout, metrics := c.snapshot()
	if host == "" {
		return nil, asNoResult(fmt.Errorf("edcb: stream-relay handshake requires TCP transport"))
	}

	start := time.Now()
	deadline := start.Add(timeout)
	req := buildRequest(opRelayViewStream, false, func(w *writer) {
		w.writeInt32(pid)
	})

	dialer := net.Dialer{Timeout: remaining(deadline)}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, fmt.Sprintf("%d", port)))
	if err != nil {
		metrics.observe(opRelayViewStream, outcomeTransportFail, time.Since(start).Seconds())
		return nil, asNoResult(err)
	}

	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return nil, asNoResult(err)
	}
	if _, err := conn.Write(req); err != nil {
		conn.Close()
		metrics.observe(opRelayViewStream, outcomeTransportFail, time.Since(start).Seconds())
		return nil, asNoResult(err)
	}

	ret, err := peekRelayRet(conn)
	if err != nil {
		conn.Close()
		metrics.observe(opRelayViewStream, outcomeTransportFail, time.Since(start).Seconds())
		return nil, asNoResult(err)
	}
	if ret != cmdSuccess {
		conn.Close()
		metrics.observe(opRelayViewStream, outcomeProtocolFail, time.Since(start).Seconds())
		return nil, asNoResult(fmt.Errorf("edcb: ret=%d", ret))
	}

	// Clear the deadline imposed for the handshake: the socket now belongs
	// to the caller for the life of the stream.
	if err := conn.SetDeadline(time.Time{}); err != nil {
		conn.Close()
		return nil, asNoResult(err)
	}
	metrics.observe(opRelayViewStream, outcomeSuccess, time.Since(start).Seconds())
	return conn, nil
}

func peekRelayRet(conn net.Conn) (int32, error) {
	var hdr [8]byte
	if _, err := readFull(conn, hdr[:]); err != nil {
		return 0, err
	}
	return int32(hdr[0]) | int32(hdr[1])<<8 | int32(hdr[2])<<16 | int32(hdr[3])<<24, nil
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// RelayViewStreamRetrying probes RelayViewStream at increasing intervals
// (0.1s, 0.2s, ... capped at 1s) until it succeeds or deadline passes —
// the server may take time to spawn the viewer process (§4.5).
func (c *Client) RelayViewStreamRetrying(ctx context.Context, pid int32, deadline time.Time) (net.Conn, error) {
	interval := 100 * time.Millisecond
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	limiter.Allow() // drain the initial burst so the first retry actually waits

	for {
		conn, err := c.RelayViewStream(ctx, pid)
		if err == nil {
			return conn, nil
		}
		if !time.Now().Before(deadline) {
			return nil, err
		}
		limiter.SetLimit(rate.Every(interval))
		if werr := limiter.Wait(ctx); werr != nil {
			return nil, werr
		}
		if interval < time.Second {
			interval += 100 * time.Millisecond
		}
	}
}

// OpenPipeStream opens the viewer's raw TS named pipe
// `SendTSTCP_<port>_<pid>`, trying port 0..29 and returning the first one
// that opens (Windows-only; preserved "first success wins" per the open
// question in §9).
func OpenPipeStream(ctx context.Context, pid int, timeout time.Duration) (net.Conn, error) {
	deadline := time.Now().Add(timeout)
	for port := 0; port <= viewerPipeMaxPort; port++ {
		name := fmt.Sprintf("SendTSTCP_%d_%d", port, pid)
		conn, err := dialPipeContext(ctx, name, remaining(deadline))
		if err == nil {
			return conn, nil
		}
	}
	return nil, asNoResult(fmt.Errorf("edcb: no SendTSTCP pipe found for pid %d", pid))
}

// OpenViewStreamRetrying probes OpenPipeStream at increasing intervals
// (0.1s up to 1s) until it succeeds or deadline passes, mirroring
// RelayViewStreamRetrying for the pipe-mode viewer handoff.
func OpenViewStreamRetrying(ctx context.Context, pid int, perAttemptTimeout time.Duration, deadline time.Time) (net.Conn, error) {
	interval := 100 * time.Millisecond
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	limiter.Allow()

	for {
		conn, err := OpenPipeStream(ctx, pid, perAttemptTimeout)
		if err == nil {
			return conn, nil
		}
		if !time.Now().Before(deadline) {
			return nil, err
		}
		limiter.SetLimit(rate.Every(interval))
		if werr := limiter.Wait(ctx); werr != nil {
			return nil, werr
		}
		if interval < time.Second {
			interval += 100 * time.Millisecond
		}
	}
}
