// Package cmd implements the command-line interface for gcal.
//
// This package provides the following commands:
//   - auth: Run the OAuth authorization flow and cache the token
//   - calendars: List the calendars visible to the account
//   - list: List upcoming events
//   - add: Create an event from a natural date/time expression
//   - update: Patch fields of an existing event
//   - delete: Delete an event
//   - import: Import events from an ICS file
//   - version: Display version information
package cmd
