// Package edcb implements the CtrlCmd binary RPC client for EpgTimerSrv
// (EDCB): wire codec, transport, command façade and the viewer stream-relay
// handshake.
package edcb

import (
	"encoding/binary"
	"errors"
	"time"
	"unicode/utf16"
)

// JST is the fixed UTC+9 zone EDCB uses for every wall-clock field on the
// wire, regardless of host timezone.
var JST = time.FixedZone("JST", 9*60*60)

// Epoch is the sentinel time returned for an unparsable SYSTEMTIME.
var Epoch = time.Unix(0, 0).In(JST)

// ErrRead is returned when a reader runs out of declared bytes. It never
// escapes the package boundary; command façade operations convert it (and
// any transport failure) into ErrNoResult.
var ErrRead = errors.New("edcb: short read")

// reader walks a byte slice with an explicit, rewindable cursor. Composite
// decoders narrow the effective limit for nested fields and restore it on
// exit (the struct/vector "snap to declared size" rule in the protocol).
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) readByte(limit int) (byte, error) {
	if limit-r.pos < 1 {
		return 0, ErrRead
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) readUint16(limit int) (uint16, error) {
	if limit-r.pos < 2 {
		return 0, ErrRead
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos : r.pos+2])
	r.pos += 2
	return v, nil
}

func (r *reader) readInt32(limit int) (int32, error) {
	if limit-r.pos < 4 {
		return 0, ErrRead
	}
	v := int32(binary.LittleEndian.Uint32(r.data[r.pos : r.pos+4]))
	r.pos += 4
	return v, nil
}

func (r *reader) readUint32(limit int) (uint32, error) {
	v, err := r.readInt32(limit)
	return uint32(v), err
}

func (r *reader) readInt64(limit int) (int64, error) {
	if limit-r.pos < 8 {
		return 0, ErrRead
	}
	v := int64(binary.LittleEndian.Uint64(r.data[r.pos : r.pos+8]))
	r.pos += 8
	return v, nil
}

// peekInt32 reads a 32-bit int without advancing the cursor. Used for the
// EventInfo optional sub-record sentinel (§4.1).
func (r *reader) peekInt32(limit int) (int32, error) {
	v, err := r.readInt32(limit)
	if err != nil {
		return 0, err
	}
	r.pos -= 4
	return v, nil
}

// readSystemTime reads a 16-byte Windows SYSTEMTIME. Out-of-range field
// values (month=0, etc.) yield the Epoch sentinel but the cursor still
// advances the full 16 bytes.
func (r *reader) readSystemTime(limit int) (time.Time, error) {
	if limit-r.pos < 16 {
		return time.Time{}, ErrRead
	}
	b := r.data[r.pos : r.pos+16]
	r.pos += 16
	year := int(binary.LittleEndian.Uint16(b[0:2]))
	month := int(binary.LittleEndian.Uint16(b[2:4]))
	day := int(binary.LittleEndian.Uint16(b[6:8]))
	hour := int(binary.LittleEndian.Uint16(b[8:10]))
	minute := int(binary.LittleEndian.Uint16(b[10:12]))
	sec := int(binary.LittleEndian.Uint16(b[12:14]))
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || sec > 59 {
		return Epoch, nil
	}
	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, JST)
	if t.Month() != time.Month(month) || t.Day() != day {
		// overflowed (e.g. day=31 in a 30-day month): Go's time.Date
		// normalizes instead of erroring, so catch it explicitly.
		return Epoch, nil
	}
	return t, nil
}

// readString reads a length-prefixed UTF-16LE string: total_len (>=6), the
// payload, a trailing 2-byte NUL not stored.
func (r *reader) readString(limit int) (string, error) {
	vs, err := r.readInt32(limit)
	if err != nil {
		return "", err
	}
	if vs < 6 || limit-r.pos < int(vs)-4 {
		return "", ErrRead
	}
	n := (int(vs) - 6) / 2
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = binary.LittleEndian.Uint16(r.data[r.pos : r.pos+2])
		r.pos += 2
	}
	r.pos += 2 // trailing NUL
	return string(utf16.Decode(units)), nil
}

// readStructIntro reads a struct's 32-bit size header and returns the
// absolute end offset fields should be bounded by.
func (r *reader) readStructIntro(limit int) (int, error) {
	start := r.pos
	vs, err := r.readInt32(limit)
	if err != nil {
		return 0, err
	}
	if vs < 4 || limit-r.pos < int(vs)-4 {
		return 0, ErrRead
	}
	return start + int(vs), nil
}

// readVectorHeader reads a vector's size+count header and returns the
// absolute end offset and declared element count.
func (r *reader) readVectorHeader(limit int) (end int, count int, err error) {
	start := r.pos
	vs, err := r.readInt32(limit)
	if err != nil {
		return 0, 0, err
	}
	vc, err := r.readInt32(limit)
	if err != nil {
		return 0, 0, err
	}
	if vs < 8 || vc < 0 || limit-r.pos < int(vs)-8 {
		return 0, 0, ErrRead
	}
	return start + int(vs), int(vc), nil
}

// readVector decodes a length-prefixed vector of T, snapping the cursor to
// the declared total size regardless of how much the element decoder
// actually consumed.
func readVector[T any](r *reader, limit int, decode func(*reader, int) (T, error)) ([]T, error) {
	end, count, err := r.readVectorHeader(limit)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, count)
	for i := 0; i < count; i++ {
		v, err := decode(r, end)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	r.pos = end
	return items, nil
}

// writer accumulates a CtrlCmd payload. Fields are permissive: callers pass
// zero values for absent fields and writeString/writeByte etc. encode the
// neutral wire form.
type writer struct {
	buf []byte
}

func (w *writer) writeByte(v byte) {
	w.buf = append(w.buf, v)
}

func (w *writer) writeUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) writeInt32(v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) writeUint32(v uint32) {
	w.writeInt32(int32(v))
}

func (w *writer) writeInt64(v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) writeIntAt(pos int, v int32) {
	binary.LittleEndian.PutUint32(w.buf[pos:pos+4], uint32(v))
}

func (w *writer) writeSystemTime(t time.Time) {
	tt := t.In(JST)
	w.writeUint16(uint16(tt.Year()))
	w.writeUint16(uint16(tt.Month()))
	w.writeUint16(uint16(int(tt.Weekday())))
	w.writeUint16(uint16(tt.Day()))
	w.writeUint16(uint16(tt.Hour()))
	w.writeUint16(uint16(tt.Minute()))
	w.writeUint16(uint16(tt.Second()))
	w.writeUint16(0) // milliseconds always zero
}

func (w *writer) writeString(s string) {
	units := utf16.Encode([]rune(s))
	w.writeInt32(int32(6 + 2*len(units)))
	for _, u := range units {
		w.writeUint16(u)
	}
	w.writeUint16(0)
}

// writeStruct reserves a 4-byte size header, runs fn to emit the fields,
// then back-patches the header with the struct's on-the-wire length.
func (w *writer) writeStruct(fn func(*writer)) {
	pos := len(w.buf)
	w.writeInt32(0)
	fn(w)
	w.writeIntAt(pos, int32(len(w.buf)-pos))
}

// writeVector writes a length-prefixed vector of T.
func writeVector[T any](w *writer, items []T, encode func(*writer, T)) {
	pos := len(w.buf)
	w.writeInt32(0)
	w.writeInt32(int32(len(items)))
	for _, v := range items {
		encode(w, v)
	}
	w.writeIntAt(pos, int32(len(w.buf)-pos))
}
