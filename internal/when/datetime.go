package when

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateRule is one entry in the ordered grammar: a pattern plus a handler
// that turns the submatches into an instant. A handler may still decline
// (e.g. a word that looks like a month but isn't), in which case the
// next rule is tried.
type dateRule struct {
	pattern *regexp.Regexp
	resolve func(m []string, now time.Time) (time.Time, bool)
}

const (
	// clockPart matches "[at] H[:MM] [am|pm]" with a leading space.
	clockPart = `\s+(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`

	weekdayNames = `sunday|monday|tuesday|wednesday|thursday|friday|saturday|sun|mon|tue|wed|thu|fri|sat`
)

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// months is keyed by the three-letter code; longer month names are
// matched by prefix against these codes.
var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// dateRules is evaluated in order, first match wins. Keeping the
// precedence as an explicit list makes each rule testable on its own.
var dateRules = []dateRule{
	// "today"
	{
		pattern: regexp.MustCompile(`^today$`),
		resolve: func(_ []string, now time.Time) (time.Time, bool) {
			return now, true
		},
	},
	// "tomorrow"
	{
		pattern: regexp.MustCompile(`^tomorrow$`),
		resolve: func(_ []string, now time.Time) (time.Time, bool) {
			return now.AddDate(0, 0, 1), true
		},
	},
	// "today 2pm", "tomorrow at 9:15am"
	{
		pattern: regexp.MustCompile(`^(today|tomorrow)` + clockPart + `$`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			base := now
			if m[1] == "tomorrow" {
				base = now.AddDate(0, 0, 1)
			}
			return atClock(base, m[2], m[3], m[4]), true
		},
	},
	// "friday 3pm", "next tuesday at 10:30am", "next monday"
	{
		pattern: regexp.MustCompile(`^(next\s+)?(` + weekdayNames + `)(?:` + clockPart + `)?$`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			target, ok := weekdays[m[2]]
			if !ok {
				return time.Time{}, false
			}
			offset := int(target) - int(now.Weekday())
			if offset <= 0 || m[1] != "" {
				offset += 7
			}
			base := now.AddDate(0, 0, offset)
			if m[3] == "" {
				return base, true
			}
			return atClock(base, m[3], m[4], m[5]), true
		},
	},
	// "jan 15", "march 3 2026", "jan 15 at 2pm"
	{
		pattern: regexp.MustCompile(`^([a-z]{3,})\.?\s+(\d{1,2})(?:,?\s+(\d{4}))?(?:` + clockPart + `)?$`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			// Prefix match against the three-letter codes, so "janu"
			// or "february" resolve the same as "jan"/"feb".
			month, ok := months[m[1][:3]]
			if !ok {
				return time.Time{}, false
			}
			day, _ := strconv.Atoi(m[2])
			year := now.Year()
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
			}
			base := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
			if m[4] == "" {
				return base, true
			}
			return atClock(base, m[4], m[5], m[6]), true
		},
	},
	// "1/14/2026 12:00"
	{
		pattern: regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})\s+(\d{1,2}):(\d{2})$`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			month, _ := strconv.Atoi(m[1])
			day, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			hour, _ := strconv.Atoi(m[4])
			minute, _ := strconv.Atoi(m[5])
			return time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location()), true
		},
	},
	// "2026-1-14 12:00"
	{
		pattern: regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})\s+(\d{1,2}):(\d{2})$`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			year, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			day, _ := strconv.Atoi(m[3])
			hour, _ := strconv.Atoi(m[4])
			minute, _ := strconv.Atoi(m[5])
			return time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location()), true
		},
	},
	// "13:30" (24-hour, today)
	{
		pattern: regexp.MustCompile(`^(\d{1,2}):(\d{2})$`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			hour, _ := strconv.Atoi(m[1])
			minute, _ := strconv.Atoi(m[2])
			return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), true
		},
	},
	// "2pm", "9:15 am" (today)
	{
		pattern: regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`),
		resolve: func(m []string, now time.Time) (time.Time, bool) {
			return atClock(now, m[1], m[2], m[3]), true
		},
	},
}

// fallbackLayouts approximates generic free-form parsing for inputs the
// grammar rules don't cover, tried in order against the original text.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
	"January 2, 2006 15:04",
	"January 2, 2006",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// ParseDateTime resolves a natural date/time expression ("tomorrow 2pm",
// "next friday 3pm", "jan 15 2026", "1/14/2026 12:00", "13:30") into an
// absolute instant in now's timezone. Rules are tried in declaration
// order and the first match wins; inputs nothing understands produce an
// error carrying the original text.
func ParseDateTime(text string, now time.Time) (time.Time, error) {
	input := strings.ToLower(strings.TrimSpace(text))

	for _, rule := range dateRules {
		m := rule.pattern.FindStringSubmatch(input)
		if m == nil {
			continue
		}
		if t, ok := rule.resolve(m, now); ok {
			return t, nil
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(text), now.Location()); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("Unable to parse date/time: %q", text)
}

// atClock places the parsed clock reading onto base's calendar date.
// Omitted minutes default to 0; the meridiem, when present, applies the
// usual 12-hour conversion (12am becomes 0, pm adds 12 below noon).
func atClock(base time.Time, hourStr, minuteStr, meridiem string) time.Time {
	hour, _ := strconv.Atoi(hourStr)
	minute := 0
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
	}

	switch meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
}
