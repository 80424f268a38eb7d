// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for neo-engine: the
// near-Earth objects and orbit paths held by the catalog, and the
// configuration loaded by the CLI.
package types

import (
	"math"
	"strconv"
)

// DateLayout is the calendar-day format used for close-approach dates and
// query dates.
const DateLayout = "2006-01-02"

// NearEarthObject is one physical object, identified by its unique name.
// Orbits are appended by the catalog in load order; everything else is
// read-only once loaded.
type NearEarthObject struct {
	// ID is the catalog identifier of the object.
	ID string `json:"id" yaml:"id"`

	// ReferenceID is the NASA NEO reference identifier.
	ReferenceID string `json:"neo_reference_id" yaml:"neo_reference_id"`

	// Name is the natural key; comparisons are case-sensitive.
	Name string `json:"name" yaml:"name"`

	// JPLURL links to the JPL small-body database entry.
	JPLURL string `json:"nasa_jpl_url" yaml:"nasa_jpl_url"`

	// AbsoluteMagnitude is the absolute magnitude H.
	AbsoluteMagnitude float64 `json:"absolute_magnitude_h" yaml:"absolute_magnitude_h"`

	// Diameter holds the estimated min/max diameter per unit system.
	// Unknown values are NaN.
	Diameter Diameters `json:"estimated_diameter" yaml:"estimated_diameter"`

	// Hazardous reports whether the object is a potentially hazardous asteroid.
	Hazardous bool `json:"is_potentially_hazardous_asteroid" yaml:"is_potentially_hazardous_asteroid"`

	orbits []*OrbitPath
}

// Diameters groups the estimated diameter range in each unit system.
type Diameters struct {
	MinKilometers float64 `json:"min_kilometers" yaml:"min_kilometers"`
	MaxKilometers float64 `json:"max_kilometers" yaml:"max_kilometers"`
	MinMeters     float64 `json:"min_meters" yaml:"min_meters"`
	MaxMeters     float64 `json:"max_meters" yaml:"max_meters"`
	MinMiles      float64 `json:"min_miles" yaml:"min_miles"`
	MaxMiles      float64 `json:"max_miles" yaml:"max_miles"`
	MinFeet       float64 `json:"min_feet" yaml:"min_feet"`
	MaxFeet       float64 `json:"max_feet" yaml:"max_feet"`
}

// Orbits returns the object's orbit paths in load order. The returned
// slice is a copy; callers cannot mutate the object's list.
func (n *NearEarthObject) Orbits() []*OrbitPath {
	out := make([]*OrbitPath, len(n.orbits))
	copy(out, n.orbits)
	return out
}

// OrbitCount returns the number of orbit paths recorded for the object.
func (n *NearEarthObject) OrbitCount() int {
	return len(n.orbits)
}

// EachOrbit calls fn for every orbit path in load order until fn returns false.
func (n *NearEarthObject) EachOrbit(fn func(*OrbitPath) bool) {
	for _, o := range n.orbits {
		if !fn(o) {
			return
		}
	}
}

// AppendOrbit records an orbit path for the object. Only the catalog
// calls this, while loading.
func (n *NearEarthObject) AppendOrbit(o *OrbitPath) {
	n.orbits = append(n.orbits, o)
}

// String returns the object name.
func (n *NearEarthObject) String() string {
	return n.Name
}

// OrbitPath is one close approach of a named object. It is immutable after
// construction.
type OrbitPath struct {
	// NEOName refers back to the owning object by name.
	NEOName string `json:"neo_name" yaml:"neo_name"`

	// CloseApproachDate is the calendar day of the approach (YYYY-MM-DD)
	// and the catalog's date index key.
	CloseApproachDate string `json:"close_approach_date" yaml:"close_approach_date"`

	// CloseApproachDateFull is the full approach timestamp as supplied.
	CloseApproachDateFull string `json:"close_approach_date_full" yaml:"close_approach_date_full"`

	KilometersPerSecond float64 `json:"kilometers_per_second" yaml:"kilometers_per_second"`
	KilometersPerHour   float64 `json:"kilometers_per_hour" yaml:"kilometers_per_hour"`
	MilesPerHour        float64 `json:"miles_per_hour" yaml:"miles_per_hour"`

	MissDistanceAstronomical float64 `json:"miss_distance_astronomical" yaml:"miss_distance_astronomical"`
	MissDistanceLunar        float64 `json:"miss_distance_lunar" yaml:"miss_distance_lunar"`
	MissDistanceKilometers   float64 `json:"miss_distance_kilometers" yaml:"miss_distance_kilometers"`
	MissDistanceMiles        float64 `json:"miss_distance_miles" yaml:"miss_distance_miles"`

	// OrbitingBody is the body approached, e.g. "Earth".
	OrbitingBody string `json:"orbiting_body" yaml:"orbiting_body"`
}

// String returns the close-approach date.
func (o *OrbitPath) String() string {
	return o.CloseApproachDate
}

// NEOHeader is the column set used when NearEarthObjects are written as rows.
var NEOHeader = []string{
	"id", "neo_reference_id", "name", "nasa_jpl_url", "absolute_magnitude_h",
	"estimated_diameter_min_kilometers", "estimated_diameter_max_kilometers",
	"is_potentially_hazardous_asteroid", "orbit_count",
}

// Row renders the object as a record matching NEOHeader.
func (n *NearEarthObject) Row() []string {
	return []string{
		n.ID,
		n.ReferenceID,
		n.Name,
		n.JPLURL,
		formatFloat(n.AbsoluteMagnitude),
		formatFloat(n.Diameter.MinKilometers),
		formatFloat(n.Diameter.MaxKilometers),
		strconv.FormatBool(n.Hazardous),
		strconv.Itoa(len(n.orbits)),
	}
}

// PathHeader is the column set used when OrbitPaths are written as rows.
var PathHeader = []string{
	"neo_name", "close_approach_date", "close_approach_date_full",
	"kilometers_per_second", "miss_distance_kilometers",
	"miss_distance_lunar", "orbiting_body",
}

// Row renders the orbit path as a record matching PathHeader.
func (o *OrbitPath) Row() []string {
	return []string{
		o.NEOName,
		o.CloseApproachDate,
		o.CloseApproachDateFull,
		formatFloat(o.KilometersPerSecond),
		formatFloat(o.MissDistanceKilometers),
		formatFloat(o.MissDistanceLunar),
		o.OrbitingBody,
	}
}

// formatFloat renders f without trailing zeros; NaN renders as empty.
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
