package usermgr

import "regexp"

// Accepts the names useradd(8) creates by default as well as the trailing
// '$' used for machine accounts.
var usernameRe = regexp.MustCompile(`^[a-z_][a-z0-9_-]{0,31}\$?$`)

// ValidUsername reports whether u is a plausible login name. It also keeps
// names containing ':' or ',' out of any path that rewrites passwd.
func ValidUsername(u string) bool {
	return usernameRe.MatchString(u)
}
