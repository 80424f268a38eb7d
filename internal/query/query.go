// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query validates raw search options and compiles them into a Spec
// the engine can execute: one date-search mode, a result limit, filter
// predicates grouped by target kind, and the kind of object to return.
package query

import (
	"errors"
	"fmt"
	"time"

	"github.com/pdiddy/neo-engine/pkg/types"
)

var (
	// ErrInvalidQuery reports malformed query options.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrUnsupportedFilter reports an unknown filter option or operator.
	ErrUnsupportedFilter = errors.New("unsupported filter")
)

// Kind selects an object kind: the target of a filter bucket and the
// shape of query results.
type Kind int

const (
	// KindNEO addresses near-Earth objects.
	KindNEO Kind = iota + 1
	// KindPath addresses orbit paths.
	KindPath
)

// String returns the option name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNEO:
		return "NEO"
	case KindPath:
		return "Path"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind maps a return_object name (NEO or Path) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "NEO":
		return KindNEO, nil
	case "Path":
		return KindPath, nil
	default:
		return 0, fmt.Errorf("%w: unknown return object %q (want NEO or Path)", ErrInvalidQuery, name)
	}
}

// DateSearch is the date-search mode of a Spec: Equals or Between.
type DateSearch interface {
	dateSearch()
}

// Equals matches approaches on a single calendar day.
type Equals struct {
	Date time.Time
}

// Between matches approaches from Start through End, both inclusive.
type Between struct {
	Start time.Time
	End   time.Time
}

func (Equals) dateSearch()  {}
func (Between) dateSearch() {}

// Options are the raw query inputs as they arrive from the command line or
// a saved query file.
type Options struct {
	Date         string   `yaml:"date,omitempty" toml:"date,omitempty"`
	StartDate    string   `yaml:"start_date,omitempty" toml:"start_date,omitempty"`
	EndDate      string   `yaml:"end_date,omitempty" toml:"end_date,omitempty"`
	Number       int      `yaml:"number" toml:"number"`
	Filters      []string `yaml:"filters,omitempty" toml:"filters,omitempty"`
	ReturnObject string   `yaml:"return_object" toml:"return_object"`
}

// Spec is a validated, normalized query.
type Spec struct {
	DateSearch DateSearch
	Number     int
	Filters    map[Kind][]Filter
	ReturnKind Kind
}

// Compile validates opts and builds a Spec. Exactly one of Date or the
// StartDate/EndDate pair must be set. Every filter is parsed with
// ParseFilter and stored in the KindNEO bucket; filters on orbit-path
// attributes are told apart by the attribute they read.
func Compile(opts Options) (Spec, error) {
	ds, err := compileDateSearch(opts)
	if err != nil {
		return Spec{}, err
	}

	if opts.Number < 0 {
		return Spec{}, fmt.Errorf("%w: number must not be negative, got %d", ErrInvalidQuery, opts.Number)
	}

	kind, err := ParseKind(opts.ReturnObject)
	if err != nil {
		return Spec{}, err
	}

	filters := make([]Filter, 0, len(opts.Filters))
	for _, raw := range opts.Filters {
		f, err := ParseFilter(raw)
		if err != nil {
			return Spec{}, err
		}
		filters = append(filters, f)
	}

	return Spec{
		DateSearch: ds,
		Number:     opts.Number,
		Filters:    map[Kind][]Filter{KindNEO: filters},
		ReturnKind: kind,
	}, nil
}

func compileDateSearch(opts Options) (DateSearch, error) {
	hasRange := opts.StartDate != "" || opts.EndDate != ""

	switch {
	case opts.Date != "" && hasRange:
		return nil, fmt.Errorf("%w: date cannot be combined with start_date/end_date", ErrInvalidQuery)
	case opts.Date != "":
		d, err := parseDate("date", opts.Date)
		if err != nil {
			return nil, err
		}
		return Equals{Date: d}, nil
	case opts.StartDate == "" && opts.EndDate == "":
		return nil, fmt.Errorf("%w: either date or start_date and end_date is required", ErrInvalidQuery)
	case opts.StartDate == "" || opts.EndDate == "":
		return nil, fmt.Errorf("%w: start_date and end_date must be given together", ErrInvalidQuery)
	}

	start, err := parseDate("start_date", opts.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", opts.EndDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start_date %s is after end_date %s", ErrInvalidQuery, opts.StartDate, opts.EndDate)
	}
	return Between{Start: start, End: end}, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(types.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not a YYYY-MM-DD date", ErrInvalidQuery, field, value)
	}
	return t, nil
}
