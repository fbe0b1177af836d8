package textutil

import (
	"testing"
)

func TestDecodeBOM(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"utf8 bom", []byte{0xef, 0xbb, 0xbf, 'h', 'i'}, "hi"},
		{"utf16le bom", []byte{0xff, 0xfe, 'h', 0, 'i', 0}, "hi"},
		{"bare ascii as shift-jis", []byte("hi"), "hi"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecodeBOM(tc.in); got != tc.want {
				t.Fatalf("DecodeBOM(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseChSet5(t *testing.T) {
	in := "NHK総合\tNHK\t32736\t1024\t1024\t1\t0\t1\t1\n" +
		"too few fields\t1\t2\n" +
		"bad ints\tX\tnotanumber\t1\t2\t3\t0\t0\t0\n"
	got := ParseChSet5(in)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(got), got)
	}
	e := got[0]
	if e.ServiceName != "NHK総合" || e.ONID != 32736 || e.TSID != 1024 || e.SID != 1024 {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if !e.EPGCapFlag || !e.SearchFlag || e.PartialFlag {
		t.Fatalf("unexpected flags: %+v", e)
	}
}

func TestLogoIDFromLogoDataIni(t *testing.T) {
	ini := "0400003E=99\nother=5\n"
	if got := LogoIDFromLogoDataIni(ini, 0x0400, 0x003E); got != 99 {
		t.Fatalf("got %d, want 99", got)
	}
	if got := LogoIDFromLogoDataIni(ini, 0xFFFF, 0xFFFF); got != -1 {
		t.Fatalf("got %d, want -1 for missing key", got)
	}
}

func TestLogoFileNameFromDirectoryIndex(t *testing.T) {
	// four space-delimited fields; fourth is the filename. The filename
	// format is "{onid:04X}_{logoID:03X}_" + a 3-char field + "_{type:02d}."
	// + extension, so the type marker lands at byte offset 12.
	listing := "a b c 0400_001_001_02.bmp\n" +
		"a b c wrongprefix_file.bmp\n"
	got := LogoFileNameFromDirectoryIndex(listing, 0x0400, 0x001, 2)
	if got != "0400_001_001_02.bmp" {
		t.Fatalf("got %q", got)
	}
	if got := LogoFileNameFromDirectoryIndex(listing, 0x0400, 0x002, 2); got != "" {
		t.Fatalf("got %q, want empty for no match", got)
	}
}

func TestParseProgramExtendedText(t *testing.T) {
	text := "prologue text\n- section one\nbody one\n- section two\nbody two"
	got := ParseProgramExtendedText(text)
	if got[""] != "prologue text\n" {
		t.Fatalf("prologue = %q", got[""])
	}
	if got["section one"] != "body one\n" {
		t.Fatalf("section one = %q", got["section one"])
	}
	if got["section two"] != "body two" {
		t.Fatalf("section two = %q", got["section two"])
	}
}

func TestParseProgramExtendedText_leadingHeading(t *testing.T) {
	text := "- only section\njust the body"
	got := ParseProgramExtendedText(text)
	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1: %+v", len(got), got)
	}
	if got["only section"] != "just the body" {
		t.Fatalf("only section = %q", got["only section"])
	}
}

func TestParseProgramExtendedText_noHeadings(t *testing.T) {
	text := "just a plain description, no sections"
	got := ParseProgramExtendedText(text)
	if got[""] != text {
		t.Fatalf("got %+v", got)
	}
}
