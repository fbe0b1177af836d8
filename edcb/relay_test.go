package edcb

import (
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"testing"
	"time"
)

func TestRelayViewStreamRequiresTCP(t *testing.T) {
	c := NewClient() // defaults to pipe mode
	if _, err := c.RelayViewStream(context.Background(), 1234); !errors.Is(err, ErrNoResult) {
		t.Fatalf("got %v, want ErrNoResult", err)
	}
}

func TestRelayViewStreamSuccessHandsBackOpenConn(t *testing.T) {
	ln, host, port := listenLoopback(t)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		var hdr [8]byte
		if _, err := io.ReadFull(conn, hdr[:]); err != nil {
			conn.Close()
			return
		}
		writeResponse(conn, cmdSuccess, nil)
		// Leave conn open: the caller owns it after a successful handshake.
	}()

	c := NewClient()
	c.SetNWSetting(host, port)
	c.SetConnectTimeOutSec(2)

	conn, err := c.RelayViewStream(context.Background(), 4321)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
}

func TestRelayViewStreamProtocolFailure(t *testing.T) {
	ln, host, port := listenLoopback(t)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		var hdr [8]byte
		if _, err := io.ReadFull(conn, hdr[:]); err != nil {
			return
		}
		writeResponse(conn, 0, nil) // ret != cmdSuccess
	}()

	c := NewClient()
	c.SetNWSetting(host, port)
	c.SetConnectTimeOutSec(2)

	if _, err := c.RelayViewStream(context.Background(), 4321); !errors.Is(err, ErrNoResult) {
		t.Fatalf("got %v, want ErrNoResult", err)
	}
}

// TestRelayViewStreamRetryingSucceedsAfterInitialRefusals simulates a
// server that isn't listening yet for the first couple of attempts (the
// viewer process hasn't been spawned) and confirms the retrying wrapper
// keeps probing until the listener comes up.
func TestRelayViewStreamRetryingSucceedsAfterInitialRefusals(t *testing.T) {
	probe, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	host, port := probe.Addr().(*net.TCPAddr).IP.String(), probe.Addr().(*net.TCPAddr).Port
	probe.Close() // nothing listens here yet: early attempts refuse

	c := NewClient()
	c.SetNWSetting(host, port)
	c.SetConnectTimeOutSec(1)

	go func() {
		time.Sleep(150 * time.Millisecond)
		ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
		if err != nil {
			return
		}
		defer ln.Close()
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		var hdr [8]byte
		if _, err := io.ReadFull(conn, hdr[:]); err != nil {
			return
		}
		writeResponse(conn, cmdSuccess, nil)
	}()

	conn, err := c.RelayViewStreamRetrying(context.Background(), 1, time.Now().Add(2*time.Second))
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
}

func TestOpenPipeStreamNoPipesAvailable(t *testing.T) {
	if _, err := OpenPipeStream(context.Background(), 99999, 50*time.Millisecond); !errors.Is(err, ErrNoResult) {
		t.Fatalf("got %v, want ErrNoResult", err)
	}
}
