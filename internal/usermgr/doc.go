// Package usermgr reads and rewrites the host passwd database with typed
// access to each account's GECOS column.
//
// Files are resolved under the host root (see hostfs):
//   <root>/etc/passwd
//   <root>/etc/shadow
//
// Lines that are not account records are kept verbatim, and records that are
// not modified are written back byte for byte.
package usermgr
