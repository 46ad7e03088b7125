package codegen

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the fixed memory-layout parameters the reference
// CodeGenConfig hard-codes. They are exposed here as overridable
// settings (via an optional YAML file) rather than constants, since a
// caller driving the compiler at a different stack-machine scale needs
// to move data_start/temp_start/stack_start without touching code.
type Config struct {
	WordSize   int `yaml:"word_size"`
	DataStart  int `yaml:"data_start"`
	TempStart  int `yaml:"temp_start"`
	StackStart int `yaml:"stack_start"`
}

// DefaultConfig returns the reference implementation's fixed defaults:
// a 4-byte word, data segment starting at 0, temporaries at 1000, and
// the runtime stack at 2000.
func DefaultConfig() Config {
	return Config{WordSize: 4, DataStart: 0, TempStart: 1000, StackStart: 2000}
}

// LoadConfig reads path as YAML and overlays it on DefaultConfig,
// leaving any field the file omits at its default value. A missing
// file is not an error; it is the common case of "use the defaults".
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
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
