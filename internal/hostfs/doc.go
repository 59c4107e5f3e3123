// Package hostfs provides safe access helpers for the host account files.
//
// The host root defaults to "/" and is set to the bind mount (e.g. /host)
// when lumgecos runs inside a container:
//   /etc/passwd  -> <root>/etc/passwd
//   /etc/shadow  -> <root>/etc/shadow
package hostfs
