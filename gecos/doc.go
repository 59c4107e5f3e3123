// Package gecos parses and serializes the GECOS column of a passwd record.
//
// A GECOS value is a comma separated list:
//
//	full name,room,work phone,home phone,other...
//
// Every sub-field is held as a Field, which can only be built through
// NewField and therefore never contains a character that would split the
// sub-field list (','), the passwd record (':') or the passwd file ('\n',
// '\r'). Parse and Record.String are exact inverses for any accepted input.
package gecos
