// Package config parses the funbuf.yaml manifest: which packages to
// inspect and which capability every listed type must have.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Want names the capability a check demands of its type.
type Want string

const (
	// WantMutable demands the full mutable buffer sequence contract.
	WantMutable Want = "mutable"
	// WantConst demands at least the const contract; mutable passes too.
	WantConst Want = "const"
	// WantView demands one of the two primitive view types.
	WantView Want = "view"
	// WantNone demands the type is not a buffer sequence at all.
	WantNone Want = "none"
)

// Config is the top-level funbuf.yaml manifest.
type Config struct {
	// Packages lists go/packages load patterns (e.g. "./...").
	// Defaults to ["./..."] when empty.
	Packages []string `yaml:"packages,omitempty"`

	// Checks lists the capability assertions to verify.
	Checks []Check `yaml:"checks,omitempty"`
}

// Check asserts the capability of one package-qualified type.
type Check struct {
	// Type is the package-qualified type name
	// (e.g. "example.com/chain.Gather").
	Type string `yaml:"type"`

	// Want is the demanded capability: mutable, const, view or none.
	Want Want `yaml:"want"`
}

// Load reads and parses a funbuf.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses funbuf.yaml content from bytes. The path argument is
// used only for error messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// Find searches for funbuf.yaml starting from dir and walking up to
// parent directories. Returns an empty path and nil error when no
// manifest exists anywhere above dir.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range []string{"funbuf.yaml", "funbuf.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) validate(path string) error {
	for i, check := range c.Checks {
		if check.Type == "" {
			return fmt.Errorf("%s: checks[%d]: type is required", path, i)
		}
		switch check.Want {
		case WantMutable, WantConst, WantView, WantNone:
		case "":
			return fmt.Errorf("%s: checks[%d] (%s): want is required", path, i, check.Type)
		default:
			return fmt.Errorf("%s: checks[%d] (%s): unknown want %q (expected mutable, const, view or none)",
				path, i, check.Type, check.Want)
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	if len(c.Packages) == 0 {
		c.Packages = []string{"./..."}
	}
}
