// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds every loaded near-Earth object and its orbit paths,
// indexed by close-approach date and by object name. The catalog is built
// once by Load and is read-only afterwards; concurrent readers are safe
// under that discipline.
package catalog

import (
	"errors"
	"sort"

	"github.com/pdiddy/neo-engine/pkg/types"
)

// ErrDataFormat reports a record with a missing or malformed required field.
var ErrDataFormat = errors.New("data format error")

// Record is one raw close-approach row, keyed by column name.
type Record map[string]string

// Catalog maps close-approach dates and names to NearEarthObjects.
type Catalog struct {
	// dates holds one entry per orbit path, so an object with several
	// approaches on the same day appears several times.
	dates  map[string][]*types.NearEarthObject
	names  map[string]*types.NearEarthObject
	orbits int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		dates: make(map[string][]*types.NearEarthObject),
		names: make(map[string]*types.NearEarthObject),
	}
}

// staged is a parsed record waiting to be committed.
type staged struct {
	neo  *types.NearEarthObject
	path *types.OrbitPath
}

// Load adds records to the catalog. Objects are created on first sight of
// a name and reused afterwards; each record contributes one orbit path.
// If any record is malformed Load returns an error wrapping ErrDataFormat
// and the catalog is left unchanged.
func (c *Catalog) Load(records []Record) error {
	batch := make([]staged, 0, len(records))
	for i, rec := range records {
		neo, path, err := parseRecord(rec)
		if err != nil {
			return recordError(i+1, err)
		}
		batch = append(batch, staged{neo: neo, path: path})
	}

	for _, s := range batch {
		neo, ok := c.names[s.neo.Name]
		if !ok {
			neo = s.neo
			c.names[neo.Name] = neo
		}
		neo.AppendOrbit(s.path)
		c.dates[s.path.CloseApproachDate] = append(c.dates[s.path.CloseApproachDate], neo)
		c.orbits++
	}
	return nil
}

// EntitiesOnDate returns the objects with an approach on date (YYYY-MM-DD),
// one entry per approach. The result is nil when there are none.
func (c *Catalog) EntitiesOnDate(date string) []*types.NearEarthObject {
	return c.dates[date]
}

// EntityByName returns the object with the exact given name.
func (c *Catalog) EntityByName(name string) (*types.NearEarthObject, bool) {
	neo, ok := c.names[name]
	return neo, ok
}

// Len returns the number of distinct objects.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Dates returns every indexed close-approach date in ascending order.
func (c *Catalog) Dates() []string {
	dates := make([]string, 0, len(c.dates))
	for d := range c.dates {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Stats summarizes the catalog contents.
type Stats struct {
	Objects   int    `json:"objects" yaml:"objects"`
	Orbits    int    `json:"orbits" yaml:"orbits"`
	Hazardous int    `json:"hazardous" yaml:"hazardous"`
	Dates     int    `json:"dates" yaml:"dates"`
	FirstDate string `json:"first_date,omitempty" yaml:"first_date,omitempty"`
	LastDate  string `json:"last_date,omitempty" yaml:"last_date,omitempty"`
}

// Stats computes object, orbit, hazard and date-span counts.
func (c *Catalog) Stats() Stats {
	s := Stats{
		Objects: len(c.names),
		Orbits:  c.orbits,
		Dates:   len(c.dates),
	}
	for _, neo := range c.names {
		if neo.Hazardous {
			s.Hazardous++
		}
	}
	if dates := c.Dates(); len(dates) > 0 {
		s.FirstDate = dates[0]
		s.LastDate = dates[len(dates)-1]
	}
	return s
}
