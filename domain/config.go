package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DumprcName is the file name of the pattern file under the user config
// directory.
const DumprcName = "dumprc"

// Patterns holds saved field lists, keyed by domain and then by pattern name.
//
// A TOML dumprc looks like:
//
//	[system]
//	brief = ["datetime", "hostname", "cpu"]
//
//	[process]
//	top_mem = ["datetime", "pid", "comm", "mem"]
type Patterns map[string]map[string][]string

// ErrPatternNotFound is matched by *PatternNotFoundError.
var ErrPatternNotFound = errors.New("pattern not found")

// PatternNotFoundError reports a --pattern missing from the dumprc file.
type PatternNotFoundError struct {
	Domain string
	Name   string
}

func (e *PatternNotFoundError) Error() string {
	return fmt.Sprintf("no pattern %q for %s in dumprc", e.Name, e.Domain)
}

func (e *PatternNotFoundError) Is(target error) bool {
	return target == ErrPatternNotFound
}

// Lookup returns the tokens of the named pattern of a domain.
func (p Patterns) Lookup(domain, name string) ([]string, error) {
	tokens, ok := p[domain][name]
	if !ok {
		return nil, &PatternNotFoundError{Domain: domain, Name: name}
	}
	return append([]string(nil), tokens...), nil
}

// DefaultDumprcPath returns <user config dir>/statdump/dumprc.
func DefaultDumprcPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, CommandName, DumprcName), nil
}

// LoadPatterns reads a dumprc file. Files ending in .yaml or .yml are YAML,
// anything else is TOML. A missing file yields no patterns.
func LoadPatterns(path string) (Patterns, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Patterns{}, nil
		}
		return nil, fmt.Errorf("failed to read dumprc: %w", err)
	}

	var p Patterns
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &p)
	default:
		err = toml.Unmarshal(data, &p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse dumprc %s: %w", path, err)
	}
	if p == nil {
		p = Patterns{}
	}
	return p, nil
}
