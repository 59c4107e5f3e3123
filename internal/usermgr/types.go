package usermgr

import "github.com/hnrobert/lumgecos/gecos"

type PasswdEntry struct {
	Name   string
	Passwd string
	UID    int
	GID    int
	Gecos  gecos.Record
	Home   string
	Shell  string
}

type ShadowEntry struct {
	Name       string
	Hash       string
	LastChange string
	Min        string
	Max        string
	Warn       string
	Inactive   string
	Expire     string
	Reserved   string
}
