package when

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var timeLimitPattern = regexp.MustCompile(`(?i)^(\d+)\s*([dwmy]?)$`)

// ParseTimeLimit converts a relative horizon like "3m", "2w", "90d" or
// "1y" into an absolute instant after now. The unit defaults to months.
// Month and year arithmetic uses AddDate, so the day-of-month may roll
// over at month ends. Unlike ParseDuration this fails hard on bad input:
// a silently wrong horizon would hide or reveal unintended events.
func ParseTimeLimit(text string, now time.Time) (time.Time, error) {
	m := timeLimitPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return time.Time{}, fmt.Errorf("Invalid time limit: %q — use #d, #w, #m, or #y (e.g. 3m, 90d, 1y)", text)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("Invalid time limit: %q — use #d, #w, #m, or #y (e.g. 3m, 90d, 1y)", text)
	}

	switch strings.ToLower(m[2]) {
	case "d":
		return now.AddDate(0, 0, n), nil
	case "w":
		return now.AddDate(0, 0, 7*n), nil
	case "y":
		return now.AddDate(n, 0, 0), nil
	default: // "" or "m"
		return now.AddDate(0, n, 0), nil
	}
}
