// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine executes compiled queries against a catalog: date lookup,
// filter chain, deduplication, truncation, and projection to the requested
// object kind. Execute reads the catalog and keeps no state between calls.
package engine

import (
	"errors"
	"fmt"

	"github.com/pdiddy/neo-engine/internal/catalog"
	"github.com/pdiddy/neo-engine/internal/query"
	"github.com/pdiddy/neo-engine/pkg/types"
)

// ErrUnsupportedFeature reports a Spec state the compiler never produces.
var ErrUnsupportedFeature = errors.New("unsupported feature")

// Result holds the shaped query output and pipeline statistics. Exactly one
// of NEOs or Paths is populated, according to Kind.
type Result struct {
	Kind  query.Kind
	NEOs  []*types.NearEarthObject
	Paths []*types.OrbitPath

	// Candidates is the number of index entries found by the date lookup,
	// before filtering.
	Candidates int

	// DupsRemoved is the number of repeated objects dropped after filtering.
	DupsRemoved int
}

// Len returns the number of records in the result.
func (r Result) Len() int {
	if r.Kind == query.KindPath {
		return len(r.Paths)
	}
	return len(r.NEOs)
}

// Names returns one label per record: object names for NEO results and
// "name@date" for Path results.
func (r Result) Names() []string {
	out := make([]string, 0, r.Len())
	if r.Kind == query.KindPath {
		for _, p := range r.Paths {
			out = append(out, p.NEOName+"@"+p.CloseApproachDate)
		}
		return out
	}
	for _, n := range r.NEOs {
		out = append(out, n.Name)
	}
	return out
}

// Execute runs spec against c. Objects come back in the order they were
// first found by the date lookup (day by day for ranges, load order within
// a day), each at most once, truncated to spec.Number.
func Execute(c *catalog.Catalog, spec query.Spec) (Result, error) {
	candidates, err := lookup(c, spec.DateSearch)
	if err != nil {
		return Result{}, err
	}

	filtered := query.ApplyAll(spec.Filters[spec.ReturnKind], candidates)
	unique, removed := deduplicate(filtered)
	unique = truncate(unique, spec.Number)

	res := Result{
		Kind:        spec.ReturnKind,
		Candidates:  len(candidates),
		DupsRemoved: removed,
	}

	switch spec.ReturnKind {
	case query.KindNEO:
		res.NEOs = unique
	case query.KindPath:
		res.Paths = project(unique)
	default:
		return Result{}, fmt.Errorf("%w: return kind %v", ErrUnsupportedFeature, spec.ReturnKind)
	}
	return res, nil
}

// lookup resolves the date search into index entries, duplicates included.
func lookup(c *catalog.Catalog, ds query.DateSearch) ([]*types.NearEarthObject, error) {
	switch ds := ds.(type) {
	case query.Equals:
		return c.EntitiesOnDate(ds.Date.Format(types.DateLayout)), nil
	case query.Between:
		if ds.Start.After(ds.End) {
			return nil, fmt.Errorf("%w: start date %s is after end date %s", query.ErrInvalidQuery,
				ds.Start.Format(types.DateLayout), ds.End.Format(types.DateLayout))
		}
		var out []*types.NearEarthObject
		for d := ds.Start; !d.After(ds.End); d = d.AddDate(0, 0, 1) {
			out = append(out, c.EntitiesOnDate(d.Format(types.DateLayout))...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: date search %T", ErrUnsupportedFeature, ds)
	}
}

// deduplicate keeps the first occurrence of each object name.
func deduplicate(neos []*types.NearEarthObject) ([]*types.NearEarthObject, int) {
	seen := make(map[string]struct{}, len(neos))
	out := make([]*types.NearEarthObject, 0, len(neos))
	for _, n := range neos {
		if _, ok := seen[n.Name]; ok {
			continue
		}
		seen[n.Name] = struct{}{}
		out = append(out, n)
	}
	return out, len(neos) - len(out)
}

func truncate(neos []*types.NearEarthObject, n int) []*types.NearEarthObject {
	if n <= 0 {
		return neos[:0]
	}
	if len(neos) > n {
		return neos[:n]
	}
	return neos
}

// project flattens objects into all of their orbit paths.
func project(neos []*types.NearEarthObject) []*types.OrbitPath {
	var out []*types.OrbitPath
	for _, n := range neos {
		out = append(out, n.Orbits()...)
	}
	return out
}
