// Package when parses the human date/time, duration, time-limit and
// reminder expressions accepted on the command line.
//
// All parsers that resolve relative expressions ("tomorrow 2pm", "3m")
// take an explicit reference time. The reference time also carries the
// timezone every result is anchored in, so callers (and tests) control
// the zone instead of the parsers reaching for ambient state.
package when
