// Package config loads minimization problems from YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pborges/qm/internal/cover"
	"github.com/pborges/qm/internal/qm"
)

// DefaultPath is the problem file read when none is given.
const DefaultPath = "qm.yaml"

// Config describes one problem and how to run it.
type Config struct {
	Vars      int      `yaml:"vars"`
	Matches   []uint64 `yaml:"matches"`
	Ignored   []uint64 `yaml:"ignored,omitempty"`
	Names     []string `yaml:"names,omitempty"`
	Threshold *int     `yaml:"threshold,omitempty"`
	Cover     string   `yaml:"cover,omitempty"`
}

// Example is the problem written by `qm init`.
func Example() Config {
	threshold := qm.DefaultCompareThreshold
	return Config{
		Vars:      4,
		Matches:   []uint64{4, 8, 10, 11, 12, 15},
		Ignored:   []uint64{9, 14},
		Names:     []string{"A", "B", "C", "D"},
		Threshold: &threshold,
		Cover:     cover.Direct.String(),
	}
}

// Load reads the problem at path. A missing file yields an empty Config and
// no error when path is DefaultPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a problem from r.
func Decode(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return c, nil
}

// Write stores c at path, replacing any existing file.
func Write(path string, c Config) error {
	if path == "" {
		path = DefaultPath
	}
	d, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0644)
}

// Strategy parses the configured cover strategy.
func (c Config) Strategy() (cover.Strategy, error) {
	return cover.ParseStrategy(c.Cover)
}

// Options returns the engine options the config implies.
func (c Config) Options() ([]qm.Option, error) {
	s, err := c.Strategy()
	if err != nil {
		return nil, err
	}
	opts := []qm.Option{qm.WithCover(s)}
	if c.Threshold != nil {
		opts = append(opts, qm.WithCompareThreshold(*c.Threshold))
	}
	return opts, nil
}
