package when

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Reminder delivery methods understood by the Calendar API.
const (
	MethodPopup = "popup"
	MethodEmail = "email"
)

// Reminder is one parsed reminder override: how to deliver it and how
// many minutes before the event start it fires.
type Reminder struct {
	Method  string
	Minutes int64
}

var reminderPattern = regexp.MustCompile(`(?i)^(\d+)\s*([mhd]?)$`)

// ParseReminders splits a comma-separated reminder spec ("15m,1h:email")
// into individual reminders, each part trimmed and parsed on its own.
// The special values "0" and "none" mean "no reminders at all" and
// short-circuit per-part parsing; the result is then an empty, non-nil
// slice so callers can tell "suppress reminders" from "not specified".
func ParseReminders(text string) ([]Reminder, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "0" || strings.EqualFold(trimmed, "none") {
		return []Reminder{}, nil
	}

	var reminders []Reminder
	for _, part := range strings.Split(text, ",") {
		r, err := ParseReminder(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	return reminders, nil
}

// ParseReminder parses a single reminder spec such as "30m", "1h:email"
// or "2d". An optional ":method" suffix selects the delivery method;
// only "email" is recognized, anything else resolves to popup. The time
// part accepts m/h/d units, defaulting to minutes.
func ParseReminder(text string) (Reminder, error) {
	spec := text
	method := MethodPopup

	if i := strings.LastIndex(text, ":"); i >= 0 {
		if strings.EqualFold(strings.TrimSpace(text[i+1:]), MethodEmail) {
			method = MethodEmail
		}
		text = text[:i]
	}

	m := reminderPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Reminder{}, fmt.Errorf("Invalid reminder: %q — use #m, #h, or #d (e.g. 30m, 1h, 2d)", spec)
	}

	n, _ := strconv.Atoi(m[1])
	minutes := int64(n)
	switch strings.ToLower(m[2]) {
	case "h":
		minutes *= 60
	case "d":
		minutes *= 24 * 60
	}

	return Reminder{Method: method, Minutes: minutes}, nil
}
