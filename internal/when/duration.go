package when

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultDurationMinutes is used when a duration string cannot be understood.
const DefaultDurationMinutes = 60

var (
	durationHours   = regexp.MustCompile(`(?i)(\d+)\s*h`)
	durationMinutes = regexp.MustCompile(`(?i)(\d+)\s*m`)
)

// ParseDuration converts a short duration string like "1h30m", "45m" or
// "90" into a minute count. The hour and minute components are scanned
// independently and summed. A bare number is taken as minutes. Input that
// matches neither form falls back to DefaultDurationMinutes; a wrong
// duration is visible on the created event and cheap to fix, so this
// parser never fails.
func ParseDuration(text string) int {
	minutes := 0
	matched := false

	if m := durationHours.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		minutes += h * 60
		matched = true
	}
	if m := durationMinutes.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		minutes += n
		matched = true
	}
	if matched {
		return minutes
	}

	if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && n >= 0 {
		return n
	}

	return DefaultDurationMinutes
}
