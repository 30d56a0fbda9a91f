package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/steinerpack/verify"
)

// DefaultMaxNodes caps instance size for batch runs; larger instances
// blow the O(arcs·terminals) variable space and are skipped.
const DefaultMaxNodes = 4500

// Config controls a batch run. The zero value is not usable; start from
// DefaultConfig or LoadConfig.
type Config struct {
	// Instances is the directory whose subdirectories hold the .dat files.
	Instances string `yaml:"instances"`

	// Solutions is the directory holding <instance-name>*.sol files;
	// empty means only per-instance sol.txt files are consulted.
	Solutions string `yaml:"solutions"`

	// Workers bounds the concurrent instance count; 0 means one worker
	// per CPU.
	Workers int `yaml:"workers"`

	// Epsilon is the objective-comparison tolerance.
	Epsilon float64 `yaml:"epsilon"`

	// MaxNodes skips instances whose param.dat declares more nodes;
	// 0 disables the filter.
	MaxNodes int `yaml:"max_nodes"`
}

// DefaultConfig returns the batch defaults.
func DefaultConfig() Config {
	return Config{
		Epsilon:  verify.DefaultEpsilon,
		MaxNodes: DefaultMaxNodes,
	}
}

// LoadConfig reads a YAML config file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("pipeline: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("pipeline: config %s: %w", path, err)
	}

	return cfg, nil
}
