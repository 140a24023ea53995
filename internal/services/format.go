package services

import (
	"strconv"
	"strings"
)

var durationReplacer = strings.NewReplacer("PT", "", "H", ":", "M", ":", "S", "")

// FormatDuration turns an ISO-8601 duration token into colon notation
// (PT4M13S -> "4:13", PT1H2M3S -> "1:2:3"). It is a pure marker
// substitution; unexpected tokens pass through partially transformed.
func FormatDuration(iso string) string {
	return durationReplacer.Replace(iso)
}

// FormatViews abbreviates a view count: 500 -> "500", 1500 -> "1K",
// 2500000 -> "2M". Floor division, no rounding.
func FormatViews(count int64) string {
	switch {
	case count >= 1_000_000:
		return strconv.FormatInt(count/1_000_000, 10) + "M"
	case count >= 1_000:
		return strconv.FormatInt(count/1_000, 10) + "K"
	default:
		return strconv.FormatInt(count, 10)
	}
}

// TruncateDescription caps a description at 100 characters plus an ellipsis.
// Counts runes, not bytes, so multibyte text is not split mid-character.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= 100 {
		return s
	}
	return string(runes[:100]) + "..."
}
