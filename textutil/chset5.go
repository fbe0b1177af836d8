package textutil

import (
	"strconv"
	"strings"
)

// ChSet5Entry is one line of ChSet5.txt: the server's channel/service
// list, tab-separated.
type ChSet5Entry struct {
	ServiceName  string
	NetworkName  string
	ONID         int
	TSID         int
	SID          int
	ServiceType  int
	PartialFlag  bool
	EPGCapFlag   bool
	SearchFlag   bool
}

// ParseChSet5 parses ChSet5.txt content. Lines with fewer than 9 tab
// fields, or whose integer fields fail to parse, are silently skipped —
// this file is best-effort server state, not a wire protocol.
func ParseChSet5(s string) []ChSet5Entry {
	var out []ChSet5Entry
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		fields := strings.Split(line, "\t")
		if len(fields) < 9 {
			continue
		}
		e, ok := parseChSet5Line(fields)
		if ok {
			out = append(out, e)
		}
	}
	return out
}

func parseChSet5Line(f []string) (ChSet5Entry, bool) {
	var e ChSet5Entry
	e.ServiceName = f[0]
	e.NetworkName = f[1]
	onid, err := strconv.Atoi(f[2])
	if err != nil {
		return e, false
	}
	tsid, err := strconv.Atoi(f[3])
	if err != nil {
		return e, false
	}
	sid, err := strconv.Atoi(f[4])
	if err != nil {
		return e, false
	}
	stype, err := strconv.Atoi(f[5])
	if err != nil {
		return e, false
	}
	partial, err := strconv.Atoi(f[6])
	if err != nil {
		return e, false
	}
	epgCap, err := strconv.Atoi(f[7])
	if err != nil {
		return e, false
	}
	search, err := strconv.Atoi(f[8])
	if err != nil {
		return e, false
	}
	e.ONID = onid
	e.TSID = tsid
	e.SID = sid
	e.ServiceType = stype
	e.PartialFlag = partial != 0
	e.EPGCapFlag = epgCap != 0
	e.SearchFlag = search != 0
	return e, true
}
