// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/neo-engine/pkg/types"
)

// Column names of a close-approach record.
const (
	FieldID               = "id"
	FieldReferenceID      = "neo_reference_id"
	FieldName             = "name"
	FieldJPLURL           = "nasa_jpl_url"
	FieldMagnitude        = "absolute_magnitude_h"
	FieldDiameterMinKm    = "estimated_diameter_min_kilometers"
	FieldDiameterMaxKm    = "estimated_diameter_max_kilometers"
	FieldDiameterMinM     = "estimated_diameter_min_meters"
	FieldDiameterMaxM     = "estimated_diameter_max_meters"
	FieldDiameterMinMi    = "estimated_diameter_min_miles"
	FieldDiameterMaxMi    = "estimated_diameter_max_miles"
	FieldDiameterMinFt    = "estimated_diameter_min_feet"
	FieldDiameterMaxFt    = "estimated_diameter_max_feet"
	FieldHazardous        = "is_potentially_hazardous_asteroid"
	FieldKmPerSecond      = "kilometers_per_second"
	FieldKmPerHour        = "kilometers_per_hour"
	FieldMilesPerHour     = "miles_per_hour"
	FieldApproachDate     = "close_approach_date"
	FieldApproachDateFull = "close_approach_date_full"
	FieldMissAstronomical = "miss_distance_astronomical"
	FieldMissLunar        = "miss_distance_lunar"
	FieldMissKilometers   = "miss_distance_kilometers"
	FieldMissMiles        = "miss_distance_miles"
	FieldOrbitingBody     = "orbiting_body"
)

// fieldReader pulls typed values out of a Record and keeps the first error.
type fieldReader struct {
	rec Record
	err error
}

func (r *fieldReader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf(format, args...)
	}
}

func (r *fieldReader) raw(key string) (string, bool) {
	v, ok := r.rec[key]
	if !ok {
		r.fail("missing field %q", key)
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (r *fieldReader) str(key string) string {
	v, _ := r.raw(key)
	return v
}

func (r *fieldReader) nonEmpty(key string) string {
	v, ok := r.raw(key)
	if ok && v == "" {
		r.fail("empty field %q", key)
	}
	return v
}

func (r *fieldReader) float(key string) float64 {
	v, ok := r.raw(key)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail("field %q: invalid number %q", key, v)
		return 0
	}
	return f
}

// diameter reads an optional diameter; absent or unparsable values are NaN.
func (r *fieldReader) diameter(key string) float64 {
	v, ok := r.rec[key]
	if !ok {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func (r *fieldReader) boolean(key string) bool {
	v, ok := r.raw(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail("field %q: invalid boolean %q", key, v)
		return false
	}
	return b
}

func (r *fieldReader) date(key string) string {
	v := r.nonEmpty(key)
	if v == "" {
		return ""
	}
	if _, err := time.Parse(types.DateLayout, v); err != nil {
		r.fail("field %q: invalid date %q", key, v)
	}
	return v
}

// parseRecord builds a detached object and its orbit path from rec.
func parseRecord(rec Record) (*types.NearEarthObject, *types.OrbitPath, error) {
	r := &fieldReader{rec: rec}

	neo := &types.NearEarthObject{
		ID:                r.str(FieldID),
		ReferenceID:       r.str(FieldReferenceID),
		Name:              r.nonEmpty(FieldName),
		JPLURL:            r.str(FieldJPLURL),
		AbsoluteMagnitude: r.float(FieldMagnitude),
		Diameter: types.Diameters{
			MinKilometers: r.diameter(FieldDiameterMinKm),
			MaxKilometers: r.diameter(FieldDiameterMaxKm),
			MinMeters:     r.diameter(FieldDiameterMinM),
			MaxMeters:     r.diameter(FieldDiameterMaxM),
			MinMiles:      r.diameter(FieldDiameterMinMi),
			MaxMiles:      r.diameter(FieldDiameterMaxMi),
			MinFeet:       r.diameter(FieldDiameterMinFt),
			MaxFeet:       r.diameter(FieldDiameterMaxFt),
		},
		Hazardous: r.boolean(FieldHazardous),
	}

	path := &types.OrbitPath{
		NEOName:                  neo.Name,
		CloseApproachDate:        r.date(FieldApproachDate),
		CloseApproachDateFull:    r.str(FieldApproachDateFull),
		KilometersPerSecond:      r.float(FieldKmPerSecond),
		KilometersPerHour:        r.float(FieldKmPerHour),
		MilesPerHour:             r.float(FieldMilesPerHour),
		MissDistanceAstronomical: r.float(FieldMissAstronomical),
		MissDistanceLunar:        r.float(FieldMissLunar),
		MissDistanceKilometers:   r.float(FieldMissKilometers),
		MissDistanceMiles:        r.float(FieldMissMiles),
		OrbitingBody:             r.str(FieldOrbitingBody),
	}

	if r.err != nil {
		return nil, nil, r.err
	}
	return neo, path, nil
}

func recordError(n int, err error) error {
	return fmt.Errorf("%w: record %d: %v", ErrDataFormat, n, err)
}
