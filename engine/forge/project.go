package forge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultScriptDir is foundry's script directory when foundry.toml does not set one.
const DefaultScriptDir = "script"

// Project is a forge project on disk.
type Project struct {
	Dir       string // Project root
	ScriptDir string // Script directory relative to Dir
}

type foundryConfig struct {
	Profile map[string]struct {
		Script string `toml:"script"`
	} `toml:"profile"`
}

// LoadProject reads the script directory from dir/foundry.toml. A project
// without foundry.toml uses the defaults.
func LoadProject(dir string) (*Project, error) {
	p := &Project{Dir: dir, ScriptDir: DefaultScriptDir}

	b, err := os.ReadFile(filepath.Join(dir, "foundry.toml"))
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read foundry.toml: %w", err)
	}

	var cfg foundryConfig
	if err = toml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode foundry.toml: %w", err)
	}
	if profile, ok := cfg.Profile["default"]; ok && profile.Script != "" {
		p.ScriptDir = filepath.Clean(profile.Script)
	}

	return p, nil
}

// Script returns the path of a script relative to the project root.
func (p *Project) Script(name string) string {
	return filepath.ToSlash(filepath.Join(p.ScriptDir, name))
}

// Path returns an absolute-or-relative path of a project file as seen from the
// current working directory.
func (p *Project) Path(name string) string {
	return filepath.Join(p.Dir, name)
}
