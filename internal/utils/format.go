package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration converts a "PT#H#M#S" duration into H:MM:SS, or M:SS when
// there are no hours. Anything else formats as "0:00".
func FormatDuration(iso string) string {
	m := isoDurationPattern.FindStringSubmatch(strings.TrimSpace(iso))
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return "0:00"
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatViews renders a raw view count as 950, 1.5K or 2M.
func FormatViews(count int64) string {
	switch {
	case count >= 1_000_000:
		return compact(float64(count)/1_000_000) + "M"
	case count >= 1_000:
		return compact(float64(count)/1_000) + "K"
	default:
		return strconv.FormatInt(count, 10)
	}
}

// FormatViewCount is FormatViews for a count stored as a string. Values that
// are not integers are returned unchanged.
func FormatViewCount(raw string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return raw
	}
	return FormatViews(n)
}

func compact(v float64) string {
	s := strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
