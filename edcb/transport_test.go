package edcb

import (
	"encoding/binary"
	"testing"
	"time"

	"golang.org/x/net/nettest"
)

func TestRemainingClampsToZero(t *testing.T) {
	if got := remaining(time.Now().Add(-time.Second)); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
	if got := remaining(time.Now().Add(time.Hour)); got <= 0 {
		t.Fatalf("got %v, want > 0", got)
	}
}

// TestReadHeaderAndPayload drives readHeader/readPayload over an in-memory
// net.Conn pair from nettest rather than a real socket or pipe.
func TestReadHeaderAndPayload(t *testing.T) {
	client, server, err := nettest.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()
	defer server.Close()

	payload := []byte("hello")
	go func() {
		var hdr [8]byte
		binary.LittleEndian.PutUint32(hdr[0:4], uint32(cmdSuccess))
		binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(payload)))
		server.Write(hdr[:])
		server.Write(payload)
	}()

	deadline := time.Now().Add(time.Second)
	size, err := readHeader(client, deadline)
	if err != nil {
		t.Fatal(err)
	}
	if size != int32(len(payload)) {
		t.Fatalf("size = %d, want %d", size, len(payload))
	}
	got, err := readPayload(client, deadline, size)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(payload) {
		t.Fatalf("got %q, want %q", got, payload)
	}
}

func TestReadHeaderRejectsFailureRet(t *testing.T) {
	client, server, err := nettest.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()
	defer server.Close()

	go func() {
		var hdr [8]byte
		binary.LittleEndian.PutUint32(hdr[0:4], uint32(0)) // not cmdSuccess
		binary.LittleEndian.PutUint32(hdr[4:8], 0)
		server.Write(hdr[:])
	}()

	if _, err := readHeader(client, time.Now().Add(time.Second)); err == nil {
		t.Fatal("expected error for non-success ret")
	}
}

func TestReadPayloadEmptyIsNilNoRead(t *testing.T) {
	client, server, err := nettest.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()
	defer server.Close()

	got, err := readPayload(client, time.Now().Add(time.Second), 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}
