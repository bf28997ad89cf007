package platform

import (
	"fmt"
	"strings"
)

const albumPrefix = "Album:"

// FormatISO8601Duration converts an ISO 8601 duration such as "PT3M21S" into
// a "m:ss" display string. Hours are folded into minutes, so "PT1H2M3S"
// becomes "62:03". Inputs it cannot interpret yield "", which downstream
// treats as the attribute being absent.
func FormatISO8601Duration(iso string) string {
	rest, ok := strings.CutPrefix(iso, "PT")
	if !ok || rest == "" {
		return ""
	}

	var hours, minutes, seconds int
	num := 0
	hasNum := false
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			num = num*10 + int(r-'0')
			hasNum = true
		case r == 'H':
			hours = num
		case r == 'M':
			minutes = num
		case r == 'S':
			seconds = num
		default:
			return ""
		}
		if r < '0' || r > '9' {
			if !hasNum {
				return ""
			}
			num = 0
			hasNum = false
		}
	}
	if hasNum {
		// Trailing digits without a unit designator.
		return ""
	}

	minutes += hours * 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// ExtractAlbum scans a video description for the "Album:" line that YouTube's
// auto-generated music descriptions carry. Returns "" when no album is named.
func ExtractAlbum(description string) string {
	for _, line := range strings.Split(description, "\n") {
		if idx := strings.Index(line, albumPrefix); idx >= 0 {
			return strings.TrimSpace(line[idx+len(albumPrefix):])
		}
	}
	return ""
}
