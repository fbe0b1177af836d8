// Package textutil decodes the small external text formats EpgTimerSrv
// hands out alongside CtrlCmd responses: ChSet5.txt channel lists,
// LogoData.ini logo-ID maps, logo directory listings, and the extended
// program-description text embedded in EventInfo. None of these are part
// of the CtrlCmd wire format itself; they are plain files the caller reads
// off disk (or a share) once it has a path from the protocol layer.
package textutil

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeBOM turns a raw byte buffer into a string, sniffing a leading BOM:
// FF FE selects UTF-16LE, EF BB BF selects UTF-8, anything else is decoded
// as Shift-JIS (code page 932). Invalid sequences are replaced with the
// Unicode replacement character, never an error.
func DecodeBOM(buf []byte) string {
	switch {
	case len(buf) == 0:
		return ""
	case len(buf) >= 2 && buf[0] == 0xff && buf[1] == 0xfe:
		return decodeUTF16LE(buf[2:])
	case len(buf) >= 3 && buf[0] == 0xef && buf[1] == 0xbb && buf[2] == 0xbf:
		return decodeTransform(unicode.UTF8.NewDecoder(), buf[3:])
	default:
		return decodeTransform(japanese.ShiftJIS.NewDecoder(), buf)
	}
}

func decodeTransform(t transform.Transformer, buf []byte) string {
	out, _, err := transform.Bytes(t, buf)
	if err != nil {
		return string(buf)
	}
	return string(out)
}

func decodeUTF16LE(buf []byte) string {
	if len(buf)%2 != 0 {
		buf = buf[:len(buf)-1]
	}
	units := make([]uint16, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		units = append(units, uint16(buf[i])|uint16(buf[i+1])<<8)
	}
	return string(utf16.Decode(units))
}
