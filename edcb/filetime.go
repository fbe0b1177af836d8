package edcb

import "time"

// filetimeEpochOffset is the number of 100-ns ticks between the Windows
// FILETIME epoch (1601-01-01 UTC) and the Unix epoch (1970-01-01 UTC).
const filetimeEpochOffset = 116444736000000000

// ToFileTime converts t to a Windows FILETIME (100-ns ticks since
// 1601-01-01 UTC), per §4.6.
func ToFileTime(t time.Time) int64 {
	return t.UTC().Unix()*10_000_000 + filetimeEpochOffset
}

// FromFileTime converts a Windows FILETIME back to a UTC time.Time.
func FromFileTime(ft int64) time.Time {
	unixSec := (ft - filetimeEpochOffset) / 10_000_000
	return time.Unix(unixSec, 0).UTC()
}

// ServiceFilter is one [mask, id] pair constraining EnumPgInfoEx/EnumPgArc
// to a service. ID encodes (onid<<32)|(tsid<<16)|sid; Mask is OR'd onto
// the candidate service ID before comparison (§4.3).
type ServiceFilter struct {
	Mask int64
	ID   int64
}

// ServiceFilterID packs onid/tsid/sid into the id form EnumPgInfoEx and
// EnumPgArc expect.
func ServiceFilterID(onid, tsid, sid uint16) int64 {
	return int64(onid)<<32 | int64(tsid)<<16 | int64(sid)
}

// buildPgTimeRange encodes the service-filter/time-range vector shared by
// EnumPgInfoEx and EnumPgArc: filter pairs, then begin/end FILETIMEs.
func buildPgTimeRange(filters []ServiceFilter, begin, end time.Time) []int64 {
	out := make([]int64, 0, len(filters)*2+2)
	for _, f := range filters {
		out = append(out, f.Mask, f.ID)
	}
	out = append(out, ToFileTime(begin), ToFileTime(end))
	return out
}
