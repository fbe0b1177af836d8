package edcb

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"strconv"
	"testing"
	"time"
)

func listenLoopback(t *testing.T) (net.Listener, string, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	host, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatal(err)
	}
	return ln, host, port
}

// readRequest reads one full CtrlCmd request frame off conn: opcode, size,
// then size bytes of payload.
func readRequest(conn net.Conn) (opcode int32, payload []byte, err error) {
	var hdr [8]byte
	if _, err = io.ReadFull(conn, hdr[:]); err != nil {
		return 0, nil, err
	}
	opcode = int32(binary.LittleEndian.Uint32(hdr[0:4]))
	size := int32(binary.LittleEndian.Uint32(hdr[4:8]))
	if size == 0 {
		return opcode, nil, nil
	}
	payload = make([]byte, size)
	_, err = io.ReadFull(conn, payload)
	return opcode, payload, err
}

func writeResponse(conn net.Conn, ret int32, payload []byte) {
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(ret))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(payload)))
	conn.Write(hdr[:])
	conn.Write(payload)
}

func TestClientCallV1Success(t *testing.T) {
	ln, host, port := listenLoopback(t)
	defer ln.Close()

	want := []byte{1, 2, 3, 4}
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		if _, _, err := readRequest(conn); err != nil {
			return
		}
		writeResponse(conn, cmdSuccess, want)
	}()

	c := NewClient()
	c.SetNWSetting(host, port)
	c.SetConnectTimeOutSec(2)

	got, err := c.call(context.Background(), 1021, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestClientCallV2StripsCmdVer(t *testing.T) {
	ln, host, port := listenLoopback(t)
	defer ln.Close()

	inner := []byte{9, 9}
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		if _, _, err := readRequest(conn); err != nil {
			return
		}
		var resp [2]byte
		binary.LittleEndian.PutUint16(resp[:], cmdVer)
		writeResponse(conn, cmdSuccess, append(resp[:], inner...))
	}()

	c := NewClient()
	c.SetNWSetting(host, port)
	c.SetConnectTimeOutSec(2)

	got, err := c.call(context.Background(), 2011, true, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(inner) {
		t.Fatalf("got %v, want %v", got, inner)
	}
}

func TestClientCallV2StaleCmdVerIsNoResult(t *testing.T) {
	ln, host, port := listenLoopback(t)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		if _, _, err := readRequest(conn); err != nil {
			return
		}
		var resp [2]byte
		binary.LittleEndian.PutUint16(resp[:], cmdVer-1)
		writeResponse(conn, cmdSuccess, resp[:])
	}()

	c := NewClient()
	c.SetNWSetting(host, port)
	c.SetConnectTimeOutSec(2)

	if _, err := c.call(context.Background(), 2011, true, nil); !errors.Is(err, ErrNoResult) {
		t.Fatalf("got %v, want ErrNoResult", err)
	}
}

// TestClientCallBlackHoleRespectsDeadline asserts a TCP request against an
// endpoint that accepts but never responds returns ErrNoResult within the
// configured connect_timeout_sec budget, not later.
func TestClientCallBlackHoleRespectsDeadline(t *testing.T) {
	ln, host, port := listenLoopback(t)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		<-time.After(5 * time.Second) // outlives the test
	}()

	c := NewClient()
	c.SetNWSetting(host, port)
	c.SetConnectTimeOutSec(0.1)

	start := time.Now()
	_, err := c.call(context.Background(), 1021, false, nil)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrNoResult) {
		t.Fatalf("got %v, want ErrNoResult", err)
	}
	if elapsed > 250*time.Millisecond {
		t.Fatalf("took %v, want <= 250ms", elapsed)
	}
}

func TestClientCallConnectionRefusedIsNoResult(t *testing.T) {
	ln, host, port := listenLoopback(t)
	ln.Close() // nothing listening now

	c := NewClient()
	c.SetNWSetting(host, port)
	c.SetConnectTimeOutSec(1)

	if _, err := c.call(context.Background(), 1021, false, nil); !errors.Is(err, ErrNoResult) {
		t.Fatalf("got %v, want ErrNoResult", err)
	}
}
