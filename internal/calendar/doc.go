// Package calendar provides a client for the Google Calendar API plus
// the table formatting used by the CLI.
//
// A Client is bound to one account and one calendar; commands that never
// mutate events request the read-only API scope.
//
// Example usage:
//
//	client, err := calendar.NewClient(ctx, "default", calendar.DefaultCalendarID, true)
//	if err != nil {
//	    return err
//	}
//	events, err := client.Events(ctx, 10, time.Now(), horizon)
package calendar
