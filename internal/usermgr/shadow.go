package usermgr

type ShadowFile struct {
	pf parsedFile[ShadowEntry]
}

// LoadShadow is read-only: lumgecos never rewrites shadow.
func LoadShadow(path string) (*ShadowFile, error) {
	pf, err := loadFile(path, 2, func(_ int, parts []string) (*ShadowEntry, error) {
		for len(parts) < 9 {
			parts = append(parts, "")
		}
		return &ShadowEntry{
			Name:       parts[0],
			Hash:       parts[1],
			LastChange: parts[2],
			Min:        parts[3],
			Max:        parts[4],
			Warn:       parts[5],
			Inactive:   parts[6],
			Expire:     parts[7],
			Reserved:   parts[8],
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &ShadowFile{pf: pf}, nil
}

func (f *ShadowFile) Find(name string) *ShadowEntry {
	for _, e := range f.pf.entries() {
		if e.Name == name {
			return e
		}
	}
	return nil
}
