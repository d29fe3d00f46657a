// Package google provides OAuth2 authentication and token management
// for the Google Calendar API.
//
// Tokens are cached per account and access level under the user cache
// directory, so read-only commands can run against a token that never
// gained write access. The OAuth client configuration comes from a
// credentials JSON downloaded from the Google Cloud console.
package google
