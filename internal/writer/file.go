// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package writer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/neo-engine/internal/engine"
	"github.com/pdiddy/neo-engine/internal/query"
	"github.com/pdiddy/neo-engine/pkg/types"
)

// writeCSV writes a header row followed by one row per record.
func writeCSV(path string, res engine.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	cw := csv.NewWriter(f)
	if err := cw.Write(header(res)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := cw.WriteAll(rows(res)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// NEOEntry is the exported form of a NearEarthObject. Unknown diameters
// are omitted.
type NEOEntry struct {
	Name              string      `json:"name" yaml:"name"`
	ID                string      `json:"id" yaml:"id"`
	ReferenceID       string      `json:"neo_reference_id" yaml:"neo_reference_id"`
	JPLURL            string      `json:"nasa_jpl_url" yaml:"nasa_jpl_url"`
	AbsoluteMagnitude float64     `json:"absolute_magnitude_h" yaml:"absolute_magnitude_h"`
	DiameterMinKm     *float64    `json:"estimated_diameter_min_kilometers,omitempty" yaml:"estimated_diameter_min_kilometers,omitempty"`
	DiameterMaxKm     *float64    `json:"estimated_diameter_max_kilometers,omitempty" yaml:"estimated_diameter_max_kilometers,omitempty"`
	Hazardous         bool        `json:"is_potentially_hazardous_asteroid" yaml:"is_potentially_hazardous_asteroid"`
	Orbits            []PathEntry `json:"orbits" yaml:"orbits"`
}

// PathEntry is the exported form of an OrbitPath.
type PathEntry struct {
	NEOName               string  `json:"neo_name" yaml:"neo_name"`
	CloseApproachDate     string  `json:"close_approach_date" yaml:"close_approach_date"`
	CloseApproachDateFull string  `json:"close_approach_date_full" yaml:"close_approach_date_full"`
	KilometersPerSecond   float64 `json:"kilometers_per_second" yaml:"kilometers_per_second"`
	MissDistanceKm        float64 `json:"miss_distance_kilometers" yaml:"miss_distance_kilometers"`
	MissDistanceLunar     float64 `json:"miss_distance_lunar" yaml:"miss_distance_lunar"`
	OrbitingBody          string  `json:"orbiting_body" yaml:"orbiting_body"`
}

func pathEntry(p *types.OrbitPath) PathEntry {
	return PathEntry{
		NEOName:               p.NEOName,
		CloseApproachDate:     p.CloseApproachDate,
		CloseApproachDateFull: p.CloseApproachDateFull,
		KilometersPerSecond:   p.KilometersPerSecond,
		MissDistanceKm:        p.MissDistanceKilometers,
		MissDistanceLunar:     p.MissDistanceLunar,
		OrbitingBody:          p.OrbitingBody,
	}
}

func neoEntry(n *types.NearEarthObject) NEOEntry {
	e := NEOEntry{
		Name:              n.Name,
		ID:                n.ID,
		ReferenceID:       n.ReferenceID,
		JPLURL:            n.JPLURL,
		AbsoluteMagnitude: n.AbsoluteMagnitude,
		DiameterMinKm:     known(n.Diameter.MinKilometers),
		DiameterMaxKm:     known(n.Diameter.MaxKilometers),
		Hazardous:         n.Hazardous,
		Orbits:            []PathEntry{},
	}
	n.EachOrbit(func(p *types.OrbitPath) bool {
		e.Orbits = append(e.Orbits, pathEntry(p))
		return true
	})
	return e
}

func known(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}

// entries returns the exportable form of res: []NEOEntry or []PathEntry.
func entries(res engine.Result) any {
	if res.Kind == query.KindPath {
		out := make([]PathEntry, 0, len(res.Paths))
		for _, p := range res.Paths {
			out = append(out, pathEntry(p))
		}
		return out
	}
	out := make([]NEOEntry, 0, len(res.NEOs))
	for _, n := range res.NEOs {
		out = append(out, neoEntry(n))
	}
	return out
}

func writeJSON(path string, res engine.Result) error {
	data, err := json.MarshalIndent(entries(res), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func writeYAML(path string, res engine.Result) error {
	data, err := yaml.Marshal(entries(res))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
