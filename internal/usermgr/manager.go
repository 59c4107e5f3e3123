package usermgr

import (
	"errors"
	"fmt"

	"github.com/hnrobert/lumgecos/gecos"
	"github.com/hnrobert/lumgecos/internal/hostfs"
	"github.com/hnrobert/lumgecos/internal/logger"
)

var ErrUserNotFound = errors.New("user not found")

type Manager struct {
	PasswdPath string
	ShadowPath string
	// StrictChfn additionally rejects the characters chfn(1) refuses.
	StrictChfn bool
}

func NewDefault() (*Manager, error) {
	passwd, err := hostfs.Path(hostfs.EtcPasswdRel)
	if err != nil {
		return nil, err
	}
	shadow, err := hostfs.Path(hostfs.EtcShadowRel)
	if err != nil {
		return nil, err
	}
	return &Manager{PasswdPath: passwd, ShadowPath: shadow}, nil
}

// Users returns every account record in file order.
func (m *Manager) Users() ([]PasswdEntry, error) {
	pw, err := LoadPasswd(m.PasswdPath)
	if err != nil {
		return nil, err
	}
	return pw.List(), nil
}

func (m *Manager) Gecos(username string) (gecos.Record, error) {
	pw, err := LoadPasswd(m.PasswdPath)
	if err != nil {
		return gecos.Record{}, err
	}
	pe := pw.Find(username)
	if pe == nil {
		return gecos.Record{}, ErrUserNotFound
	}
	return pe.Gecos, nil
}

// UpdateGecos applies fn to a copy of the user's GECOS record and writes the
// passwd file back only if fn succeeds and the result changed. The file stays
// locked from read to write, so concurrent updates are applied in turn.
func (m *Manager) UpdateGecos(username string, fn func(*gecos.Record) error) error {
	if !ValidUsername(username) {
		return fmt.Errorf("invalid username %q", username)
	}
	var before, after string
	err := hostfs.Update(m.PasswdPath, 0644, func(b []byte) ([]byte, error) {
		pw, err := parsePasswd(m.PasswdPath, b)
		if err != nil {
			return nil, err
		}
		pe := pw.Find(username)
		if pe == nil {
			return nil, ErrUserNotFound
		}
		next := pe.Gecos.Clone()
		if err := fn(&next); err != nil {
			return nil, err
		}
		if m.StrictChfn {
			if err := next.CheckChfn(); err != nil {
				return nil, err
			}
		}
		before, after = pe.Gecos.String(), next.String()
		if before == after {
			return nil, nil
		}
		pe.Gecos = next
		return pw.Bytes(), nil
	})
	if err != nil {
		return err
	}
	if before == after {
		logger.Info("gecos for %s unchanged", username)
		return nil
	}
	logger.Info("gecos for %s changed: %q -> %q", username, before, after)
	return nil
}
