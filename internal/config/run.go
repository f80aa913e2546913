package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// RunConfig is the per-run configuration file (spec.md §6 table).
type RunConfig struct {
	Root             string   `json:"root"`
	Filename         string   `json:"filename"`
	CompilerPath     string   `json:"compiler-path"`
	Options          []string `json:"options"`
	OptOff           string   `json:"opt-off"`
	Linker           []string `json:"linker,omitempty"`
	CompilerGcovPath string   `json:"compiler-gcov-path,omitempty"`
}

// LoadRunConfig reads and validates a run configuration file.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var rc RunConfig
	if err := json.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if rc.Root == "" {
		return nil, fmt.Errorf("config: %s: %q is required", path, "root")
	}
	if rc.Filename == "" {
		return nil, fmt.Errorf("config: %s: %q is required", path, "filename")
	}
	if rc.CompilerPath == "" {
		return nil, fmt.Errorf("config: %s: %q is required", path, "compiler-path")
	}
	if rc.OptOff == "" {
		return nil, fmt.Errorf("config: %s: %q is required", path, "opt-off")
	}
	return &rc, nil
}
