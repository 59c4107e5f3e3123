// Package auth verifies a user's password against the host shadow file,
// the way chfn(1) does before letting a non-root user change their own
// GECOS entry.
package auth
