package edcb

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"
)

// defaultPipeName is EpgTimerSrv's well-known named-pipe endpoint.
const defaultPipeName = "EpgTimerSrvNoWaitPipe"

// Client is a CtrlCmd RPC client. The zero value is not usable; build one
// with NewClient. A Client is safe for concurrent use: configuration reads
// and in-flight calls are both guarded, though callers should still avoid
// reconfiguring transport mid-flight (the in-flight call may pick up
// either transport consistently, but never a half-changed one).
//
// Exactly one of pipe mode or TCP mode is active at a time: SetPipeSetting
// and SetNWSetting are mutually exclusive, the most recent call wins.
type Client struct {
	mu             sync.RWMutex
	pipeName       string
	host           string
	port           int
	connectTimeout time.Duration
	metrics        *Metrics
}

// NewClient returns a Client defaulted to pipe mode against the
// well-known EpgTimerSrv pipe, with a 15s connect/round-trip budget.
func NewClient() *Client {
	return &Client{
		pipeName:       defaultPipeName,
		connectTimeout: 15 * time.Second,
	}
}

// SetPipeSetting switches the client to named-pipe transport against the
// given pipe name (without the `\\.\pipe\` prefix).
func (c *Client) SetPipeSetting(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pipeName = name
	c.host = ""
}

// SetNWSetting switches the client to TCP transport against host:port.
func (c *Client) SetNWSetting(host string, port int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.host = host
	c.port = port
}

// SetConnectTimeOutSec sets the connect/round-trip budget shared across a
// single call's connect, write, drain and read phases (§4.4).
func (c *Client) SetConnectTimeOutSec(sec float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connectTimeout = time.Duration(sec * float64(time.Second))
}

// SetMetrics attaches a Metrics collector. Pass nil to detach.
func (c *Client) SetMetrics(m *Metrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics = m
}

func (c *Client) snapshot() (pipeName, host string, port int, timeout time.Duration, metrics *Metrics) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pipeName, c.host, c.port, c.connectTimeout, c.metrics
}

// Metrics returns the collector attached via SetMetrics, or nil.
func (c *Client) Metrics() *Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.metrics
}

// PipeExists reports whether the client's configured named pipe currently
// exists. Always false in TCP mode and on non-Windows builds (§ non-goals:
// pipe transport is Windows-only).
func (c *Client) PipeExists() bool {
	pipeName, host, _, _, _ := c.snapshot()
	if host != "" {
		return false
	}
	return pipeExistsPlatform(pipeName)
}

// buildRequest assembles a full CtrlCmd request frame: opcode, a
// placeholder payload-size header, an optional v2 cmd_ver prefix, then the
// caller's payload, with the size header back-patched at the end.
func buildRequest(opcode int32, v2 bool, payloadFn func(*writer)) []byte {
	w := &writer{}
	w.writeInt32(opcode)
	w.writeInt32(0)
	if v2 {
		w.writeUint16(cmdVer)
	}
	if payloadFn != nil {
		payloadFn(w)
	}
	w.writeIntAt(4, int32(len(w.buf)-8))
	return w.buf
}

// call sends one request and returns its decoded response payload, with
// the v2 cmd_ver prefix (if any) already stripped and validated. Every
// failure — transport or protocol — collapses to ErrNoResult.
func (c *Client) call(ctx context.Context, opcode int32, v2 bool, payloadFn func(*writer)) ([]byte, error) {
	pipeName, host, port, timeout, metrics := c.snapshot()
	req := buildRequest(opcode, v2, payloadFn)

	start := time.Now()
	var resp []byte
	var err error
	if host != "" {
		resp, err = sendAndReceiveTCP(ctx, host, port, timeout, req)
	} else {
		resp, err = sendAndReceivePipe(ctx, pipeName, timeout, req)
	}
	elapsed := time.Since(start).Seconds()

	if err != nil {
		metrics.observe(opcode, outcomeTransportFail, elapsed)
		return nil, asNoResult(err)
	}
	if !v2 {
		metrics.observe(opcode, outcomeSuccess, elapsed)
		return resp, nil
	}
	if len(resp) < 2 {
		metrics.observe(opcode, outcomeProtocolFail, elapsed)
		return nil, asNoResult(ErrRead)
	}
	ver := binary.LittleEndian.Uint16(resp[:2])
	if ver < cmdVer {
		metrics.observe(opcode, outcomeProtocolFail, elapsed)
		return nil, asNoResult(fmt.Errorf("edcb: stale cmd_ver %d", ver))
	}
	metrics.observe(opcode, outcomeSuccess, elapsed)
	return resp[2:], nil
}
