package textutil

import "strings"

// ParseProgramExtendedText splits an EventInfo extended-description text
// into named sections. CRLF is normalized to LF first. A section starts
// at a line that is exactly "- " followed by its heading; the heading
// itself runs to end of that line. Text before the first such heading (or
// the whole text, if there is no heading at all) is keyed by "".
//
// Ported from edcb.py's parseProgramExtendedText: the section boundaries
// are found by scanning for the literal "\n- " marker (or a leading "- "
// at the very start of the text), so this mirrors that scan exactly
// rather than using a line-oriented split.
func ParseProgramExtendedText(s string) map[string]string {
	s = strings.ReplaceAll(s, "\r", "")
	v := make(map[string]string)
	head := ""
	i := 0
	for {
		var j int
		if i == 0 && strings.HasPrefix(s, "- ") {
			j = 2
		} else if idx := strings.Index(s[i:], "\n- "); idx >= 0 {
			j = i + idx
			start := 0
			if i != 0 {
				start = i + 1
			}
			v[head] = s[start : j+1]
			j += 3
		} else {
			if len(s) != 0 {
				start := 0
				if i != 0 {
					start = i + 1
				}
				v[head] = s[start:]
			}
			break
		}
		nextNL := strings.Index(s[j:], "\n")
		if nextNL < 0 {
			v[s[j:]] = ""
			break
		}
		i = j + nextNL
		head = s[j:i]
	}
	return v
}
