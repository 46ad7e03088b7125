// Package config loads the compiler's CLI-facing settings: the
// stack-machine memory layout codegen needs, plus how diagnostics
// should be reported. It sits above internal/codegen, which owns the
// memory-layout defaults themselves; this package is where a caller
// overrides them from a file, layered under whatever flags cmd/cminusc
// binds on top.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/cminus-compiler/internal/codegen"
)

// Config is the full set of overridable compiler settings.
type Config struct {
	Memory      codegen.Config `yaml:"memory"`
	Diagnostics Diagnostics    `yaml:"diagnostics"`
}

// Diagnostics controls how a session's error logs are surfaced beyond
// the seven fixed-format output files, which are always written.
type Diagnostics struct {
	// JSON additionally writes a diagnostics.json summary alongside the
	// plain-text logs, for tooling that wants structured errors.
	JSON bool `yaml:"json"`
	// Color enables ANSI highlighting in the CLI's own stderr echo of
	// syntax/semantic errors (the output files themselves are never
	// colorized).
	Color bool `yaml:"color"`
}

// Default returns the reference memory layout with diagnostics extras
// turned off.
func Default() Config {
	return Config{Memory: codegen.DefaultConfig()}
}

// Load reads path as YAML and overlays it on Default, leaving any
// field the file omits at its default. A missing path is not an error;
// it is the common case of "use the defaults".
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
