// Package ics imports events from iCalendar files into Google Calendar.
//
// Low-level ICS parsing is delegated to github.com/arran4/golang-ical;
// this package only maps the parsed VEVENT records onto Calendar API
// events and feeds them, one record at a time, to a create function.
// A record that fails to map or to create is recorded as an error and
// the batch continues with the next record.
package ics
