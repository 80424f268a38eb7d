// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package writer renders query results: to the console as a table, or to a
// CSV, JSON, YAML or SQLite file.
package writer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/neo-engine/internal/engine"
)

// ErrUnsupportedFormat reports an unknown output format; nothing is written.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format selects how results are written.
type Format string

const (
	Display    Format = "display"
	CSVFile    Format = "csv_file"
	JSONFile   Format = "json_file"
	YAMLFile   Format = "yaml_file"
	SQLiteFile Format = "sqlite_file"
)

// Formats lists every supported format.
var Formats = []Format{Display, CSVFile, JSONFile, YAMLFile, SQLiteFile}

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, name, strings.Join(names, ", "))
}

// Writer writes results to Out (display) or to Path (file formats).
type Writer struct {
	Out  io.Writer
	Path string
}

// Write renders res in the named format. An unknown format returns an
// error wrapping ErrUnsupportedFormat without writing anything. File
// formats require Path.
func (w *Writer) Write(ctx context.Context, format string, res engine.Result) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	if f != Display && w.Path == "" {
		return fmt.Errorf("format %s needs an output path", f)
	}

	switch f {
	case Display:
		return writeTable(w.Out, res)
	case CSVFile:
		return writeCSV(w.Path, res)
	case JSONFile:
		return writeJSON(w.Path, res)
	case YAMLFile:
		return writeYAML(w.Path, res)
	case SQLiteFile:
		return writeSQLite(ctx, w.Path, res)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
