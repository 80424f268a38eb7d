// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// File is the on-disk representation of a query and a summary of its last
// run, so a search can be saved and rerun later. The encoding follows the
// file extension: .yaml/.yml or .toml.
type File struct {
	Query   Options `yaml:"query" toml:"query"`
	Summary Summary `yaml:"summary" toml:"summary"`
}

// Summary records result statistics of the run that produced a File.
type Summary struct {
	Total             int       `yaml:"total" toml:"total"`
	Candidates        int       `yaml:"candidates" toml:"candidates"`
	DuplicatesRemoved int       `yaml:"duplicates_removed" toml:"duplicates_removed"`
	Results           []string  `yaml:"results,omitempty" toml:"results,omitempty"`
	Timestamp         time.Time `yaml:"timestamp" toml:"timestamp"`
}

type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

func codecFor(path string) (codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return codec{marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}, nil
	case ".toml":
		return codec{marshal: toml.Marshal, unmarshal: toml.Unmarshal}, nil
	default:
		return codec{}, fmt.Errorf("query file %s must be .yaml, .yml, or .toml", path)
	}
}

// WriteFile saves opts and summary to path.
func WriteFile(path string, opts Options, summary Summary) error {
	c, err := codecFor(path)
	if err != nil {
		return err
	}
	if summary.Timestamp.IsZero() {
		summary.Timestamp = time.Now().UTC().Truncate(time.Second)
	}

	data, err := c.marshal(&File{Query: opts, Summary: summary})
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile loads a previously saved query file.
func ReadFile(path string) (*File, error) {
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var f File
	if err := c.unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing query file %s: %w", path, err)
	}
	return &f, nil
}
