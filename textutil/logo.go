package textutil

import (
	"fmt"
	"strconv"
	"strings"
)

// LogoIDFromLogoDataIni looks up the logo ID for (onid, sid) in
// LogoData.ini content (lines of `KEY=VALUE`, matched case-insensitively
// against the trimmed key). Returns -1 if not found or unparsable.
func LogoIDFromLogoDataIni(s string, onid, sid int) int {
	target := fmt.Sprintf("%04X%04X", onid, sid)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			continue
		}
		if strings.ToUpper(strings.TrimSpace(kv[0])) != target {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil {
			break
		}
		return v
	}
	return -1
}

// LogoFileNameFromDirectoryIndex looks up a logo bitmap's file name from a
// directory-listing index (lines of four space-delimited fields, the
// fourth being the file name). Returns "" if no entry matches both the
// "{onid:04X}_{logoID:03X}_" prefix and the "_{logoType:02d}." marker at
// byte offset 12.
func LogoFileNameFromDirectoryIndex(s string, onid, logoID, logoType int) string {
	targetPrefix := strings.ToUpper(fmt.Sprintf("%04X_%03X_", onid, logoID))
	targetType := fmt.Sprintf("_%02d.", logoType)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		fields := strings.SplitN(line, " ", 4)
		if len(fields) != 4 {
			continue
		}
		name := fields[3]
		if len(name) < 16 {
			continue
		}
		if strings.ToUpper(name[0:9]) != targetPrefix {
			continue
		}
		if name[12:16] != targetType {
			continue
		}
		return name
	}
	return ""
}
