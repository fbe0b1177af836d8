package edcb

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestStringRoundTrip(t *testing.T) {
	w := &writer{}
	w.writeString("hello, 世界")
	r := newReader(w.buf)
	got, err := r.readString(len(w.buf))
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello, 世界" {
		t.Fatalf("got %q", got)
	}
	if r.pos != len(w.buf) {
		t.Fatalf("cursor at %d, want %d", r.pos, len(w.buf))
	}
}

func TestSystemTimeRoundTrip(t *testing.T) {
	in := time.Date(2024, time.March, 5, 13, 45, 30, 0, JST)
	w := &writer{}
	w.writeSystemTime(in)
	r := newReader(w.buf)
	got, err := r.readSystemTime(len(w.buf))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(in) {
		t.Fatalf("got %v, want %v", got, in)
	}
}

func TestSystemTimeOutOfRangeYieldsEpochButAdvances(t *testing.T) {
	buf := make([]byte, 16)
	buf[2] = 0 // month = 0: out of range
	r := newReader(buf)
	got, err := r.readSystemTime(16)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(Epoch) {
		t.Fatalf("got %v, want Epoch", got)
	}
	if r.pos != 16 {
		t.Fatalf("cursor at %d, want 16 (must still advance)", r.pos)
	}
}

func TestSystemTimeSec60YieldsEpochButAdvances(t *testing.T) {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint16(buf[2:4], 1) // month = 1
	binary.LittleEndian.PutUint16(buf[6:8], 1) // day = 1
	binary.LittleEndian.PutUint16(buf[12:14], 60) // sec = 60: out of range (valid is 0-59)
	r := newReader(buf)
	got, err := r.readSystemTime(16)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(Epoch) {
		t.Fatalf("got %v, want Epoch", got)
	}
	if r.pos != 16 {
		t.Fatalf("cursor at %d, want 16 (must still advance)", r.pos)
	}
}

func TestVectorSnapsCursorToDeclaredSize(t *testing.T) {
	// A vector declaring extra trailing bytes the element decoder never
	// consumes; the cursor must still land on the declared end.
	w := &writer{}
	pos := len(w.buf)
	w.writeInt32(0)
	w.writeInt32(1) // count = 1
	w.writeInt32(7) // one int32 element
	w.buf = append(w.buf, 0xde, 0xad, 0xbe, 0xef) // trailing padding beyond the element
	w.writeIntAt(pos, int32(len(w.buf)-pos))

	r := newReader(w.buf)
	items, err := readVector(r, len(w.buf), func(r *reader, limit int) (int32, error) {
		return r.readInt32(limit)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0] != 7 {
		t.Fatalf("got %v", items)
	}
	if r.pos != len(w.buf) {
		t.Fatalf("cursor at %d, want %d (snap to declared size)", r.pos, len(w.buf))
	}
}

func TestStructIntroRejectsUndersizedHeader(t *testing.T) {
	w := &writer{}
	w.writeInt32(3) // below the minimum of 4
	r := newReader(w.buf)
	if _, err := r.readStructIntro(len(w.buf)); err != ErrRead {
		t.Fatalf("got %v, want ErrRead", err)
	}
}

func TestContentDataByteSwap(t *testing.T) {
	v := ContentData{ContentNibble: 0x0102, UserNibble: 0x0304}
	w := &writer{}
	writeContentData(w, v)
	r := newReader(w.buf)
	got, err := readContentData(r, len(w.buf))
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Fatalf("got %+v, want %+v", got, v)
	}
}
