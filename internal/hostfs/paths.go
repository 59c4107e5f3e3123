package hostfs

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
)

// Well-known host file locations.
const (
	EtcPasswdRel = "etc/passwd"
	EtcShadowRel = "etc/shadow"
)

// DefaultRoot is used when no root has been configured.
const DefaultRoot = "/"

var ErrInvalidPath = errors.New("invalid host path")

var (
	rootMu sync.RWMutex
	root   = DefaultRoot
)

// SetRoot changes the directory host paths are resolved under.
func SetRoot(dir string) error {
	if dir == "" || !filepath.IsAbs(dir) {
		return ErrInvalidPath
	}
	rootMu.Lock()
	root = filepath.Clean(dir)
	rootMu.Unlock()
	return nil
}

func Root() string {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return root
}

// Path joins the host root with a relative path (no leading slash).
// Example with root /host: Path("etc/passwd") -> /host/etc/passwd
func Path(rel string) (string, error) {
	rel = strings.TrimPrefix(rel, "/")
	clean := filepath.Clean(rel)
	if clean == "." || clean == "" {
		return "", ErrInvalidPath
	}
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidPath
	}
	return filepath.Join(Root(), clean), nil
}
