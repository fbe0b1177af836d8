package edcb

import (
	"testing"
	"time"
)

func TestEventInfoOptionalFieldsRoundTrip(t *testing.T) {
	start := time.Date(2024, time.March, 5, 20, 0, 0, 0, JST)
	dur := int32(1800)
	in := EventInfo{
		ONID: 1, TSID: 2, SID: 3, EID: 4,
		StartTime:   &start,
		DurationSec: &dur,
		ShortInfo:   &ShortEventInfo{EventName: "News", TextChar: "Evening news"},
		// ExtInfo, ContentInfo, ComponentInfo, AudioInfo, group/relay all nil.
		FreeCAFlag: 0,
	}
	w := &writer{}
	writeEventInfo(w, in)
	r := newReader(w.buf)
	got, err := readEventInfo(r, len(w.buf))
	if err != nil {
		t.Fatal(err)
	}
	if got.StartTime == nil || !got.StartTime.Equal(start) {
		t.Fatalf("StartTime = %v", got.StartTime)
	}
	if got.DurationSec == nil || *got.DurationSec != 1800 {
		t.Fatalf("DurationSec = %v", got.DurationSec)
	}
	if got.ShortInfo == nil || got.ShortInfo.EventName != "News" {
		t.Fatalf("ShortInfo = %+v", got.ShortInfo)
	}
	for name, v := range map[string]any{
		"ExtInfo": got.ExtInfo, "ContentInfo": got.ContentInfo,
		"ComponentInfo": got.ComponentInfo, "AudioInfo": got.AudioInfo,
		"EventGroupInfo": got.EventGroupInfo, "EventRelayInfo": got.EventRelayInfo,
	} {
		switch p := v.(type) {
		case *ExtendedEventInfo:
			if p != nil {
				t.Fatalf("%s should be nil", name)
			}
		case *ContentInfo:
			if p != nil {
				t.Fatalf("%s should be nil", name)
			}
		case *ComponentInfo:
			if p != nil {
				t.Fatalf("%s should be nil", name)
			}
		case *AudioComponentInfo:
			if p != nil {
				t.Fatalf("%s should be nil", name)
			}
		case *EventGroupInfo:
			if p != nil {
				t.Fatalf("%s should be nil", name)
			}
		}
	}
}

func TestEventInfoAbsentStartTimeAndDuration(t *testing.T) {
	in := EventInfo{ONID: 1, TSID: 2, SID: 3, EID: 4}
	w := &writer{}
	writeEventInfo(w, in)
	r := newReader(w.buf)
	got, err := readEventInfo(r, len(w.buf))
	if err != nil {
		t.Fatal(err)
	}
	if got.StartTime != nil || got.DurationSec != nil {
		t.Fatalf("expected both nil, got StartTime=%v DurationSec=%v", got.StartTime, got.DurationSec)
	}
}

// TestSearchKeyInfoAndKeyEncoding matches the §8 example: key_disabled +
// case_sensitive + duration(1,2) -> "^!{999}C!{999}D!{100010002}".
func TestSearchKeyInfoAndKeyEncoding(t *testing.T) {
	in := SearchKeyInfo{
		AndKey:         "",
		KeyDisabled:    true,
		CaseSensitive:  true,
		ChkDurationMin: 1,
		ChkDurationMax: 2,
	}
	got := buildAndKey(in)
	want := "^!{999}C!{999}D!{100010002}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	var back SearchKeyInfo
	stripAndKeyPrefixes(&back, got)
	if !back.KeyDisabled || !back.CaseSensitive {
		t.Fatalf("flags lost: %+v", back)
	}
	if back.ChkDurationMin != 1 || back.ChkDurationMax != 2 {
		t.Fatalf("duration lost: %+v", back)
	}
	if back.AndKey != "" {
		t.Fatalf("AndKey = %q, want empty", back.AndKey)
	}
}

func TestSearchKeyInfoRoundTrip(t *testing.T) {
	in := SearchKeyInfo{
		AndKey:         "ニュース",
		KeyDisabled:    false,
		CaseSensitive:  true,
		ChkDurationMin: 30,
		ChkDurationMax: 60,
		NotKey:         "re-run",
		RegExpFlag:     true,
		TitleOnlyFlag:  true,
		ContentList:    []ContentData{{ContentNibble: 0x0100, UserNibble: 0xFFFF}},
		ServiceList:    []int64{ServiceFilterID(1, 2, 3)},
		ChkRecDay:      3,
		ChkRecNoService: true,
		ChkRecEnd:      9,
	}
	w := &writer{}
	writeSearchKeyInfo(w, in, true)
	r := newReader(w.buf)
	got, err := readSearchKeyInfo(r, len(w.buf), true)
	if err != nil {
		t.Fatal(err)
	}
	if got.AndKey != in.AndKey || got.CaseSensitive != in.CaseSensitive {
		t.Fatalf("got %+v", got)
	}
	if got.ChkDurationMin != 30 || got.ChkDurationMax != 60 {
		t.Fatalf("duration round trip: %+v", got)
	}
	if !got.ChkRecNoService || got.ChkRecDay != 3 {
		t.Fatalf("chk_rec_day tunneling: %+v", got)
	}
	if got.ChkRecEnd != 9 {
		t.Fatalf("ChkRecEnd = %v", got.ChkRecEnd)
	}
}

func TestRecSettingDataMarginInvariant(t *testing.T) {
	start, end := int32(300), int32(600)
	in := RecSettingData{
		RecMode:     1,
		StartMargin: &start,
		EndMargin:   &end,
	}
	w := &writer{}
	writeRecSettingData(w, in)
	r := newReader(w.buf)
	got, err := readRecSettingData(r, len(w.buf))
	if err != nil {
		t.Fatal(err)
	}
	if got.StartMargin == nil || got.EndMargin == nil {
		t.Fatalf("margins lost: %+v", got)
	}
	if *got.StartMargin != 300 || *got.EndMargin != 600 {
		t.Fatalf("margins wrong: %+v", got)
	}

	// absent case
	in2 := RecSettingData{RecMode: 2}
	w2 := &writer{}
	writeRecSettingData(w2, in2)
	r2 := newReader(w2.buf)
	got2, err := readRecSettingData(r2, len(w2.buf))
	if err != nil {
		t.Fatal(err)
	}
	if got2.StartMargin != nil || got2.EndMargin != nil {
		t.Fatalf("expected absent margins, got %+v", got2)
	}
}

func TestFileDataRoundTrip(t *testing.T) {
	in := FileData{Name: "rec.ts", Data: []byte{1, 2, 3, 4, 5}}
	w := &writer{}
	writeFileData(w, in)
	r := newReader(w.buf)
	got, err := readFileData(r, len(w.buf))
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != in.Name || string(got.Data) != string(in.Data) {
		t.Fatalf("got %+v", got)
	}
}
