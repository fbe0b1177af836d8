package edcb

import "fmt"

// SearchDateInfo is a day-of-week/time-of-day window a keyword search is
// restricted to.
type SearchDateInfo struct {
	StartDayOfWeek byte
	StartHour      byte
	StartMin       byte
	EndDayOfWeek   byte
	EndHour        byte
	EndMin         byte
}

func readSearchDateInfo(r *reader, limit int) (SearchDateInfo, error) {
	var v SearchDateInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	fields := []*byte{&v.StartDayOfWeek, &v.StartHour, &v.StartMin, &v.EndDayOfWeek, &v.EndHour, &v.EndMin}
	for _, f := range fields {
		if *f, err = r.readByte(end); err != nil {
			return v, err
		}
	}
	r.pos = end
	return v, nil
}

func writeSearchDateInfo(w *writer, v SearchDateInfo) {
	w.writeStruct(func(w *writer) {
		w.writeByte(v.StartDayOfWeek)
		w.writeByte(v.StartHour)
		w.writeByte(v.StartMin)
		w.writeByte(v.EndDayOfWeek)
		w.writeByte(v.EndHour)
		w.writeByte(v.EndMin)
	})
}

// SearchKeyInfo is a single keyword-search clause. KeyDisabled,
// CaseSensitive and the duration bounds are not independent wire fields:
// they are smuggled as text prefixes inside AndKey (§4.2, §6). ChkRecDay
// similarly tunnels ChkRecNoService by adding 40000. ChkRecEnd is only
// meaningful (and only encoded) for the v2 wire form, embedded inside
// AutoAddData.
type SearchKeyInfo struct {
	AndKey          string
	KeyDisabled     bool
	CaseSensitive   bool
	ChkDurationMin  int32
	ChkDurationMax  int32
	NotKey          string
	RegExpFlag      bool
	TitleOnlyFlag   bool
	ContentList     []ContentData
	DateList        []SearchDateInfo
	ServiceList     []int64
	NotContentFlag  bool
	NotDateFlag     bool
	FreeCAFlag      byte
	ChkRecDay       int32
	ChkRecNoService bool
	ChkRecEnd       byte // v2 only
}

const (
	keyDisabledPrefix   = "^!{999}"
	caseSensitivePrefix = "C!{999}"
	durationPrefixHead  = "D!{1"
	durationPrefixTail  = "}"
	recDayNoServiceAdd  = 40000
)

func stripAndKeyPrefixes(v *SearchKeyInfo, s string) {
	if rest, ok := cutPrefix(s, keyDisabledPrefix); ok {
		v.KeyDisabled = true
		s = rest
	}
	if rest, ok := cutPrefix(s, caseSensitivePrefix); ok {
		v.CaseSensitive = true
		s = rest
	}
	if len(s) >= len(durationPrefixHead)+8+len(durationPrefixTail) &&
		s[:len(durationPrefixHead)] == durationPrefixHead &&
		s[len(durationPrefixHead)+8:len(durationPrefixHead)+8+len(durationPrefixTail)] == durationPrefixTail {
		digits := s[len(durationPrefixHead) : len(durationPrefixHead)+8]
		var n int
		if _, err := fmt.Sscanf(digits, "%08d", &n); err == nil {
			v.ChkDurationMin = int32(n / 10000)
			v.ChkDurationMax = int32(n % 10000)
			s = s[len(durationPrefixHead)+8+len(durationPrefixTail):]
		}
	}
	v.AndKey = s
}

func cutPrefix(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):], true
	}
	return s, false
}

func buildAndKey(v SearchKeyInfo) string {
	s := v.AndKey
	if v.ChkDurationMin > 0 || v.ChkDurationMax > 0 {
		n := (int(v.ChkDurationMin)*10000 + int(v.ChkDurationMax)) % 100000000
		s = fmt.Sprintf("%s%08d%s", durationPrefixHead, n, durationPrefixTail) + s
	}
	if v.CaseSensitive {
		s = caseSensitivePrefix + s
	}
	if v.KeyDisabled {
		s = keyDisabledPrefix + s
	}
	return s
}

func readSearchKeyInfo(r *reader, limit int, v2 bool) (SearchKeyInfo, error) {
	var v SearchKeyInfo
	end, err := r.readStructIntro(limit)
	if err != nil {
		return v, err
	}
	andKeyWire, err := r.readString(end)
	if err != nil {
		return v, err
	}
	stripAndKeyPrefixes(&v, andKeyWire)

	if v.NotKey, err = r.readString(end); err != nil {
		return v, err
	}
	regExp, err := r.readByte(end)
	if err != nil {
		return v, err
	}
	v.RegExpFlag = regExp != 0
	titleOnly, err := r.readByte(end)
	if err != nil {
		return v, err
	}
	v.TitleOnlyFlag = titleOnly != 0
	if v.ContentList, err = readVector(r, end, readContentData); err != nil {
		return v, err
	}
	if v.DateList, err = readVector(r, end, readSearchDateInfo); err != nil {
		return v, err
	}
	if v.ServiceList, err = readVector(r, end, func(r *reader, limit int) (int64, error) {
		return r.readInt64(limit)
	}); err != nil {
		return v, err
	}
	notContent, err := r.readByte(end)
	if err != nil {
		return v, err
	}
	v.NotContentFlag = notContent != 0
	notDate, err := r.readByte(end)
	if err != nil {
		return v, err
	}
	v.NotDateFlag = notDate != 0
	if v.FreeCAFlag, err = r.readByte(end); err != nil {
		return v, err
	}
	chkRecDay, err := r.readInt32(end)
	if err != nil {
		return v, err
	}
	if chkRecDay >= recDayNoServiceAdd {
		v.ChkRecNoService = true
		v.ChkRecDay = chkRecDay - recDayNoServiceAdd
	} else {
		v.ChkRecDay = chkRecDay
	}
	if v2 {
		if v.ChkRecEnd, err = r.readByte(end); err != nil {
			return v, err
		}
	}
	r.pos = end
	return v, nil
}

func writeSearchKeyInfo(w *writer, v SearchKeyInfo, v2 bool) {
	w.writeStruct(func(w *writer) {
		w.writeString(buildAndKey(v))
		w.writeString(v.NotKey)
		w.writeByte(boolToFlag(v.RegExpFlag))
		w.writeByte(boolToFlag(v.TitleOnlyFlag))
		writeVector(w, v.ContentList, writeContentData)
		writeVector(w, v.DateList, writeSearchDateInfo)
		writeVector(w, v.ServiceList, func(w *writer, e int64) { w.writeInt64(e) })
		w.writeByte(boolToFlag(v.NotContentFlag))
		w.writeByte(boolToFlag(v.NotDateFlag))
		w.writeByte(v.FreeCAFlag)
		chkRecDay := v.ChkRecDay
		if v.ChkRecNoService {
			chkRecDay += recDayNoServiceAdd
		}
		w.writeInt32(chkRecDay)
		if v2 {
			w.writeByte(v.ChkRecEnd)
		}
	})
}
