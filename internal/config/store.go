package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	defaultHostRoot = "/"
	defaultMinUID   = 1000

	EnvHostRoot = "LUMGECOS_ROOT"
	EnvLogDir   = "LUMGECOS_LOG_DIR"
)

type Config struct {
	// HostRoot is where etc/passwd and etc/shadow are looked up.
	HostRoot string `yaml:"host_root"`
	// LogDir enables daily log files under <log_dir>/logs when set.
	LogDir string `yaml:"log_dir,omitempty"`
	// StrictChfn rejects '=', '\' and '"' in GECOS values like chfn(1).
	StrictChfn bool `yaml:"strict_chfn"`
	// MinUID hides system accounts from list output.
	MinUID int `yaml:"min_uid"`
}

// Keys accepted by Config.Set, in the order they are documented.
var Keys = []string{"host-root", "log-dir", "strict-chfn", "min-uid"}

// Set assigns one setting from its command line spelling.
func (c *Config) Set(key, value string) error {
	switch key {
	case "host-root":
		if !filepath.IsAbs(value) {
			return fmt.Errorf("host-root must be an absolute path: %q", value)
		}
		c.HostRoot = filepath.Clean(value)
	case "log-dir":
		c.LogDir = value
	case "strict-chfn":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("strict-chfn: %w", err)
		}
		c.StrictChfn = on
	case "min-uid":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("min-uid must be a non-negative integer: %q", value)
		}
		c.MinUID = n
	default:
		return fmt.Errorf("unknown config key %q (want one of %v)", key, Keys)
	}
	return nil
}

func Default() Config {
	return Config{HostRoot: defaultHostRoot, MinUID: defaultMinUID}
}

func (c Config) withDefaults() Config {
	if c.HostRoot == "" {
		c.HostRoot = defaultHostRoot
	}
	if c.MinUID < 0 {
		c.MinUID = defaultMinUID
	}
	return c
}

// WithEnv overlays the LUMGECOS_* environment variables.
func (c Config) WithEnv() Config {
	c.HostRoot = getenvDefault(EnvHostRoot, c.HostRoot)
	c.LogDir = getenvDefault(EnvLogDir, c.LogDir)
	return c
}

func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func DefaultPath() string {
	return filepath.Join("/etc", "lumgecos", "config.yaml")
}

// Get returns the stored config. A missing or empty file yields Default().
func (s *Store) Get() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked()
}

func (s *Store) Save(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(cfg.withDefaults())
}

func (s *Store) getLocked() (Config, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	cfg := Default()
	if len(b) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

func (s *Store) saveLocked(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
