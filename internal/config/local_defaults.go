package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LocalDefaults is an optional developer-local defaults file
// (~/.nccatrc.yaml by convention) layered *underneath* the per-run JSON
// configuration (RunConfig). It is never part of the on-disk phase
// artifact contract in spec.md §6 — that contract stays JSON end to end
// (see SPEC_FULL.md §11). Only Workers is applied (by cmd/nccat, when
// --workers is not given); RetryReplication, ResampleN and
// OracleTimeoutSecs are parsed but not read anywhere — learner A, learner
// B and the oracle use DefaultRetryReplication, DefaultResampleN and
// OracleTimeout directly.
type LocalDefaults struct {
	Workers           int `yaml:"workers,omitempty"`
	RetryReplication  int `yaml:"retry_replication,omitempty"`
	ResampleN         int `yaml:"resample_n,omitempty"`
	OracleTimeoutSecs int `yaml:"oracle_timeout_secs,omitempty"`
}

// LoadLocalDefaults reads a YAML defaults file if it exists. A missing
// file is not an error — it returns the built-in defaults untouched.
func LoadLocalDefaults(path string) (*LocalDefaults, error) {
	ld := &LocalDefaults{
		RetryReplication:  DefaultRetryReplication,
		ResampleN:         DefaultResampleN,
		OracleTimeoutSecs: int(OracleTimeout.Seconds()),
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ld, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, ld); err != nil {
		return nil, err
	}
	return ld, nil
}
