package usermgr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hnrobert/lumgecos/gecos"
	"github.com/hnrobert/lumgecos/internal/hostfs"
	"github.com/hnrobert/lumgecos/internal/logger"
)

type PasswdFile struct {
	pf parsedFile[PasswdEntry]
}

func LoadPasswd(path string) (*PasswdFile, error) {
	b, err := hostfs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parsePasswd(path, b)
}

func parsePasswd(path string, b []byte) (*PasswdFile, error) {
	pf, err := parseFile(path, b, 7, func(lineNo int, parts []string) (*PasswdEntry, error) {
		uid, err := atoi(parts[2], "passwd.uid")
		if err != nil {
			return nil, err
		}
		gid, err := atoi(parts[3], "passwd.gid")
		if err != nil {
			return nil, err
		}
		g, err := gecos.Parse(parts[4])
		if err != nil {
			// Only a stray CR can get here; leave the line untouched.
			logger.Warn("passwd line %d (%s): unparsable gecos: %v", lineNo, parts[0], err)
			return nil, nil
		}
		return &PasswdEntry{
			Name:   parts[0],
			Passwd: parts[1],
			UID:    uid,
			GID:    gid,
			Gecos:  g,
			Home:   parts[5],
			Shell:  strings.Join(parts[6:], ":"),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &PasswdFile{pf: pf}, nil
}

func (f *PasswdFile) Find(name string) *PasswdEntry {
	for _, e := range f.pf.entries() {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (f *PasswdFile) List() []PasswdEntry {
	out := make([]PasswdEntry, 0)
	for _, e := range f.pf.entries() {
		out = append(out, *e)
	}
	return out
}

func (f *PasswdFile) Bytes() []byte {
	return f.pf.bytes(formatPasswd)
}

func formatPasswd(e *PasswdEntry) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s:%s:%s",
		e.Name, e.Passwd, strconv.Itoa(e.UID), strconv.Itoa(e.GID), e.Gecos.String(), e.Home, e.Shell)
}
